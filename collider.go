package thicket

import "go.uber.org/zap"

// Collider is an axis-aligned rectangular footprint registered in a scene's
// spatial index. Its rectangle is [Position+Offset, Position+Offset+Size],
// where Position is the index anchor kept in sync with the owning entity's
// world position.
type Collider struct {
	BaseComponent

	// Position is the index anchor. It follows the owning entity once the
	// collider has started.
	Position Vector2f
	Offset   Vector2f
	Size     Vector2f

	// Trigger colliders report overlaps but never block a rigid body.
	Trigger bool
	// Canvas colliders take part only in canvas pointer picking and are
	// invisible to gameplay overlap queries.
	Canvas bool
	// IgnorePointer excludes the collider from pointer picking.
	IgnorePointer bool

	// OnCollisionEnter is called for every overlap this collider takes part
	// in, on both the querying and the struck side.
	OnCollisionEnter func(ColliderHit)
	// OnPointerEnter is called when a pointer query hits this collider.
	OnPointerEnter func(PointerContext)

	physics      *Physics
	lastPosition Vector2f
}

// NewCollider creates a collider with the given offset from its entity and
// the given size.
func NewCollider(offset, size Vector2f) *Collider {
	return &Collider{Offset: offset, Size: size}
}

// Rect returns the collider's current rectangle in world space.
func (c *Collider) Rect() Rect {
	return RectFrom(c.Position.Add(c.Offset), c.Size)
}

// Center returns the midpoint of the collider's rectangle.
func (c *Collider) Center() Vector2f {
	return c.Position.Add(c.Offset).Add(c.Size.Div(2))
}

// Physics returns the mediator the collider is registered with, or nil.
func (c *Collider) Physics() *Physics {
	return c.physics
}

// Start registers the collider with its scene's physics at the entity's
// current world position.
func (c *Collider) Start() {
	e := c.Entity()
	if e == nil || e.Scene() == nil {
		return
	}
	c.Position = e.WorldPosition()
	c.lastPosition = c.Position
	if !e.Scene().Physics().Register(c) {
		logger.Debug("collider outside index bounds",
			zap.String("entity", e.Name), zap.Stringer("rect", c.Rect()))
	}
}

// Update re-registers the collider if its entity moved since the last tick.
func (c *Collider) Update(float64) {
	if e := c.Entity(); e != nil {
		c.moveTo(e.WorldPosition())
	}
}

// Destroy unregisters the collider.
func (c *Collider) Destroy() {
	if c.physics == nil {
		return
	}
	c.physics.Unregister(c)
	c.physics = nil
}

// moveTo re-anchors a registered collider at p. Colliders whose anchor did
// not change are left untouched in the index.
func (c *Collider) moveTo(p Vector2f) {
	if c.physics == nil || p.Equal(c.lastPosition) {
		return
	}
	c.physics.Unregister(c)
	c.Position = p
	c.lastPosition = p
	if !c.physics.Register(c) && globalDebug {
		logger.Warn("collider left index bounds", zap.Stringer("rect", c.Rect()))
	}
}

// Overlap returns the first hit against the collider's current rectangle.
// Unregistered colliders never hit anything.
func (c *Collider) Overlap() (ColliderHit, bool) {
	if c.physics == nil {
		return ColliderHit{}, false
	}
	return c.physics.Overlap(c)
}

// OverlapAll returns every hit against the collider's current rectangle.
func (c *Collider) OverlapAll() []ColliderHit {
	if c.physics == nil {
		return nil
	}
	return c.physics.OverlapAll(c)
}
