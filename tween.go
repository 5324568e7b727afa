package thicket

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates an entity's position along both axes at once. Create
// one with TweenPosition or TweenWorldPosition and call Update(dt) each tick,
// or hand it to a Tweener component. Every step goes through the entity's
// transform setters, so children and colliders follow. If the entity is
// disposed, the group stops immediately.
type TweenGroup struct {
	x, y   *gween.Tween
	target *Entity
	world  bool
	Done   bool
}

// TweenPosition creates a TweenGroup moving e's local position to `to` over
// duration seconds using fn.
func TweenPosition(e *Entity, to Vector2f, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(e, e.LocalPosition(), to, duration, fn, false)
}

// TweenWorldPosition creates a TweenGroup moving e's world position to `to`.
func TweenWorldPosition(e *Entity, to Vector2f, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(e, e.WorldPosition(), to, duration, fn, true)
}

func newTweenGroup(e *Entity, from, to Vector2f, duration float64, fn ease.TweenFunc, world bool) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenGroup{
		x:      gween.New(float32(from.X), float32(to.X), float32(duration), fn),
		y:      gween.New(float32(from.Y), float32(to.Y), float32(duration), fn),
		target: e,
		world:  world,
	}
}

// Update advances the tweens by dt seconds and moves the entity.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}
	x, doneX := g.x.Update(float32(dt))
	y, doneY := g.y.Update(float32(dt))
	p := Vector2f{X: float64(x), Y: float64(y)}
	if g.world {
		g.target.SetWorldPosition(p)
	} else {
		g.target.SetLocalPosition(p)
	}
	g.Done = doneX && doneY
}

// Tweener is a component that advances tween groups during the scene tick
// and drops them once done.
type Tweener struct {
	BaseComponent
	groups []*TweenGroup
}

// NewTweener creates an empty Tweener.
func NewTweener() *Tweener {
	return &Tweener{}
}

// Add schedules g.
func (t *Tweener) Add(g *TweenGroup) {
	t.groups = append(t.groups, g)
}

// Len returns the number of running groups.
func (t *Tweener) Len() int {
	return len(t.groups)
}

// Update advances every running group.
func (t *Tweener) Update(dt float64) {
	running := t.groups[:0]
	for _, g := range t.groups {
		g.Update(dt)
		if !g.Done {
			running = append(running, g)
		}
	}
	clear(t.groups[len(running):])
	t.groups = running
}
