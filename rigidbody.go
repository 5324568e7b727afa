package thicket

// Default rigid-body parameters.
const (
	DefaultMass       = 1.0
	DefaultLinearDrag = 0.3
)

// RigidBody integrates a linear velocity into its entity's position every
// tick. When the entity has a collider, movement is resolved one axis at a
// time against the scene's physics so a blocked body can still slide along
// the obstacle.
type RigidBody struct {
	BaseComponent

	Mass float64
	// LinearDrag is the fraction of velocity lost per tick. The retained
	// fraction 1-LinearDrag is clamped to [0, 1].
	LinearDrag float64
	Velocity   Vector2f

	collider *Collider
}

// NewRigidBody creates a rigid body with the given mass and drag.
func NewRigidBody(mass, drag float64) *RigidBody {
	return &RigidBody{Mass: mass, LinearDrag: drag}
}

// NewDefaultRigidBody creates a rigid body with DefaultMass and
// DefaultLinearDrag.
func NewDefaultRigidBody() *RigidBody {
	return NewRigidBody(DefaultMass, DefaultLinearDrag)
}

// Collider returns the collider the body moves against, or nil.
func (r *RigidBody) Collider() *Collider {
	return r.collider
}

// Start resolves the sibling collider from the entity's collider slot.
func (r *RigidBody) Start() {
	if e := r.Entity(); e != nil {
		r.collider = e.Collider()
	}
}

// Destroy drops the collider reference.
func (r *RigidBody) Destroy() {
	r.collider = nil
}

// Update applies drag and moves the entity by Velocity*dt.
func (r *RigidBody) Update(dt float64) {
	e := r.Entity()
	if e == nil {
		return
	}
	r.Velocity = r.Velocity.Mul(clamp(1-r.LinearDrag, 0, 1))
	r.MovePosition(e.WorldPosition().Add(r.Velocity.Mul(dt)))
}

// ApplyForce adds f/Mass to the velocity. Each component of f is first
// scaled by the magnitude of the matching component of f's direction, which
// weakens diagonal forces and leaves axis-aligned ones unchanged.
func (r *RigidBody) ApplyForce(f Vector2f) {
	f = f.Scale(f.Normalize().Abs())
	r.Velocity = r.Velocity.Add(f.Div(r.Mass))
}

// MovePosition moves the entity toward target in world space. Without a
// registered collider the move is unconditional. Otherwise the x step and
// the y step are each tested from the collider's current rectangle and
// committed only if nothing but triggers is in the way.
func (r *RigidBody) MovePosition(target Vector2f) {
	e := r.Entity()
	if e == nil {
		return
	}
	step := target.Sub(e.WorldPosition())
	if step.X == 0 && step.Y == 0 {
		return
	}
	if r.collider == nil || r.collider.Physics() == nil {
		e.SetWorldPosition(target)
		return
	}
	if r.canStep(Vector2f{X: step.X}) {
		e.SetWorldPosition(Vector2f{X: target.X, Y: e.WorldPosition().Y})
	}
	// Collision callbacks may have removed the body during the x probe.
	if !r.attached() {
		return
	}
	if r.canStep(Vector2f{Y: step.Y}) {
		e.SetWorldPosition(Vector2f{X: e.WorldPosition().X, Y: target.Y})
	}
}

// attached reports whether the body still has an entity and a registered
// collider.
func (r *RigidBody) attached() bool {
	return r.Entity() != nil && r.collider != nil && r.collider.Physics() != nil
}

// canStep shifts the collider's offset by d, collects its hits, and restores
// the offset.
func (r *RigidBody) canStep(d Vector2f) bool {
	c := r.collider
	offset := c.Offset
	c.Offset = offset.Add(d)
	hits := c.OverlapAll()
	c.Offset = offset

	if c.Trigger {
		return true
	}
	for _, hit := range hits {
		if !hit.Collider.Trigger {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
