package thicket

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// defaultPointerSize is the footprint of a pointer query when the source does
// not report one.
var defaultPointerSize = Vector2f{X: 1, Y: 1}

// PointerState is one frame of pointer input.
type PointerState struct {
	// Screen is the pointer position in screen pixels. Canvas picking uses it.
	Screen Vector2f
	// World is the pointer position in world space. World picking uses it.
	World Vector2f
	// Size is the footprint of the pointer query. Zero means 1x1.
	Size Vector2f

	Button   MouseButton
	Pressed  bool // a button is held down
	Released bool // a button was released this frame
}

func (s PointerState) size() Vector2f {
	if s.Size.X == 0 && s.Size.Y == 0 {
		return defaultPointerSize
	}
	return s.Size
}

// PointerSource supplies the pointer state for a scene tick.
type PointerSource interface {
	Pointer() PointerState
}

// DisplaySource supplies the ratio between the current viewport and the
// design resolution, used to scale canvas colliders during picking.
type DisplaySource interface {
	StretchFactor() Vector2f
}

// StretchFactor returns the scale from a design resolution to a window size.
// Both axes take the larger of the two ratios so canvas content keeps its
// proportions. A degenerate design size yields {1, 1}.
func StretchFactor(window, design Vector2) Vector2f {
	if design.X <= 0 || design.Y <= 0 {
		return Vector2fOne
	}
	s := math.Max(float64(window.X)/float64(design.X), float64(window.Y)/float64(design.Y))
	return Vector2f{X: s, Y: s}
}

// EbitenPointer reads the mouse through ebiten.
type EbitenPointer struct {
	// ScreenToWorld converts a screen position to world space, typically
	// through a camera. Nil treats both spaces as identical.
	ScreenToWorld func(Vector2f) Vector2f
	// Size is the pointer query footprint. Zero means 1x1.
	Size Vector2f
}

// Pointer samples the cursor and mouse buttons. Must be called from the
// ebiten update goroutine.
func (p *EbitenPointer) Pointer() PointerState {
	mx, my := ebiten.CursorPosition()
	screen := Vector2f{X: float64(mx), Y: float64(my)}
	world := screen
	if p.ScreenToWorld != nil {
		world = p.ScreenToWorld(screen)
	}
	state := PointerState{Screen: screen, World: world, Size: p.Size}

	buttons := [...]struct {
		eb ebiten.MouseButton
		b  MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
		{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	}
	for _, btn := range buttons {
		if ebiten.IsMouseButtonPressed(btn.eb) {
			state.Pressed = true
			state.Button = btn.b
			break
		}
		if inpututil.IsMouseButtonJustReleased(btn.eb) {
			state.Released = true
			state.Button = btn.b
			break
		}
	}
	return state
}

// EbitenDisplay reports the stretch factor of the ebiten window against a
// design resolution.
type EbitenDisplay struct {
	Design Vector2
}

// StretchFactor compares ebiten.WindowSize with the design resolution.
func (d EbitenDisplay) StretchFactor() Vector2f {
	w, h := ebiten.WindowSize()
	return StretchFactor(Vector2{X: w, Y: h}, d.Design)
}

// FixedDisplay is a DisplaySource with a constant stretch factor.
type FixedDisplay Vector2f

// StretchFactor returns the fixed factor.
func (d FixedDisplay) StretchFactor() Vector2f {
	return Vector2f(d)
}
