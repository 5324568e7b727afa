package thicket

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// logger receives every diagnostic of the package. It discards everything
// until SetLogger is called.
var logger = zap.NewNop()

// SetLogger routes package diagnostics to l. Nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return logger
}

// globalDebug mirrors the most recently set Scene debug flag so that entity
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// tickStats holds per-tick timing. Only populated when the scene is in debug
// mode.
type tickStats struct {
	updateTime  time.Duration
	pointerTime time.Duration
	entities    int
	colliders   int
}

func (s *Scene) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	logger.Debug("tick",
		zap.String("scene", s.Name),
		zap.Duration("update", stats.updateTime),
		zap.Duration("pointer", stats.pointerTime),
		zap.Int("entities", stats.entities),
		zap.Int("colliders", stats.colliders))
}

// debugCheckDisposed panics with a descriptive message when a disposed entity
// is used in a hierarchy operation. Only called in debug mode.
func debugCheckDisposed(e *Entity, op string) {
	if e.disposed {
		panic(fmt.Sprintf("thicket debug: %s on disposed entity %q (ID was %d)", op, e.Name, e.ID))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if the hierarchy above e is deeper than
// debugMaxTreeDepth.
func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth), zap.Int("threshold", debugMaxTreeDepth), zap.String("entity", e.Name))
	}
}

const debugMaxChildCount = 1000

func debugCheckChildCount(e *Entity) {
	if len(e.children) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold",
			zap.Int("children", len(e.children)), zap.Int("threshold", debugMaxChildCount), zap.String("entity", e.Name))
	}
}

// DebugDrawOptions controls DrawDebug.
type DebugDrawOptions struct {
	// Camera maps world-space colliders to the screen. Canvas colliders are
	// already in screen space and are drawn as is. Nil draws world space
	// unchanged.
	Camera *Camera
	// Regions also outlines the region tree's nodes, when the index is one.
	Regions bool
}

var (
	debugSolidColor   = color.RGBA{0x40, 0xd0, 0x40, 0xff}
	debugTriggerColor = color.RGBA{0xe0, 0xc0, 0x20, 0xff}
	debugCanvasColor  = color.RGBA{0x40, 0x80, 0xe0, 0xff}
	debugRegionColor  = color.RGBA{0x60, 0x60, 0x60, 0x80}
)

// DrawDebug outlines every collider registered with p onto dst. Solid
// colliders are green, triggers yellow, canvas colliders blue.
func DrawDebug(dst *ebiten.Image, p *Physics, opts DebugDrawOptions) {
	if opts.Regions {
		if tree, ok := p.Index().(*RegionTree); ok {
			tree.Walk(func(bounds Rect, _ int, _ []*Collider) {
				strokeRect(dst, opts.toScreen(bounds), debugRegionColor)
			})
		}
	}
	for _, c := range p.Index().All() {
		switch {
		case c.Canvas:
			strokeRect(dst, c.Rect(), debugCanvasColor)
		case c.Trigger:
			strokeRect(dst, opts.toScreen(c.Rect()), debugTriggerColor)
		default:
			strokeRect(dst, opts.toScreen(c.Rect()), debugSolidColor)
		}
	}
}

func (o DebugDrawOptions) toScreen(r Rect) Rect {
	if o.Camera == nil {
		return r
	}
	return o.Camera.worldRectToScreen(r)
}

func strokeRect(dst *ebiten.Image, r Rect, clr color.Color) {
	r = r.Canon()
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, clr, false)
}
