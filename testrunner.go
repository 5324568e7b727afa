package thicket

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a pointer script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// pointerScript is the top-level structure of a pointer script.
type pointerScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// LoadPointerScript parses a YAML (or JSON) pointer script and queues its
// steps on p. Supported actions are press, move, release, click, drag, and
// wait. A wait of n frames holds the previous pointer state for n ticks.
func LoadPointerScript(data []byte, p *ScriptedPointer) error {
	var script pointerScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return fmt.Errorf("thicket: parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return fmt.Errorf("thicket: parse pointer script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			p.InjectPress(st.X, st.Y)
		case "move":
			p.InjectMove(st.X, st.Y)
		case "release":
			p.InjectRelease(st.X, st.Y)
		case "click":
			p.InjectClick(st.X, st.Y)
		case "drag":
			p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case "wait":
			p.InjectWait(st.Frames)
		default:
			return fmt.Errorf("thicket: pointer script step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}
