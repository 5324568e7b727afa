package thicket

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the camera position.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps between world space and a screen viewport: a world position
// centered in the viewport and a zoom factor. Cameras do not rotate.
type Camera struct {
	// Position is the world-space point shown at the viewport center.
	Position Vector2f
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle the camera maps onto.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	followTarget *Entity
	followOffset Vector2f
	followLerp   float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera with zoom 1 over the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// Follow makes the camera track e's world position plus offset. A lerp of 1
// snaps immediately; lower values give smoother following.
func (c *Camera) Follow(e *Entity, offset Vector2f, lerp float64) {
	c.followTarget = e
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to p over duration seconds.
func (c *Camera) ScrollTo(p Vector2f, duration float64, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Position.X), float32(p.X), float32(duration), easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(p.Y), float32(duration), easeFn),
	}
}

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances follow, scroll, and bounds clamping by dt seconds. A scene
// with a camera calls it at the end of every tick.
func (c *Camera) Update(dt float64) {
	if t := c.followTarget; t != nil && !t.IsDisposed() {
		target := t.WorldPosition().Add(c.followOffset)
		c.Position = c.Position.Add(target.Sub(c.Position).Mul(c.followLerp))
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.Position.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Position.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts the position so the visible area stays within
// Bounds. If Bounds is smaller than the visible area, the camera centers on it.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	if minX > maxX {
		c.Position.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.Position.X = math.Max(minX, math.Min(c.Position.X, maxX))
	}
	if minY > maxY {
		c.Position.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Position.Y = math.Max(minY, math.Min(c.Position.Y, maxY))
	}
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p Vector2f) Vector2f {
	return p.Sub(c.Position).Mul(c.Zoom).Add(c.Viewport.Center())
}

// ScreenToWorld converts screen coordinates to a world position. It can be
// used directly as EbitenPointer.ScreenToWorld.
func (c *Camera) ScreenToWorld(s Vector2f) Vector2f {
	return s.Sub(c.Viewport.Center()).Div(c.Zoom).Add(c.Position)
}

// VisibleBounds returns the world-space rectangle shown in the viewport.
func (c *Camera) VisibleBounds() Rect {
	lo := c.ScreenToWorld(Vector2f{X: c.Viewport.X, Y: c.Viewport.Y})
	hi := c.ScreenToWorld(Vector2f{X: c.Viewport.X + c.Viewport.Width, Y: c.Viewport.Y + c.Viewport.Height})
	return RectFrom(lo, hi.Sub(lo))
}

// worldRectToScreen maps a world rectangle to the screen.
func (c *Camera) worldRectToScreen(r Rect) Rect {
	lo := c.WorldToScreen(r.Min())
	hi := c.WorldToScreen(r.Max())
	return RectFrom(lo, hi.Sub(lo))
}
