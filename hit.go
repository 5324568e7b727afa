package thicket

// ColliderHit describes one detected overlap. It is built fresh for every
// detection and never modified afterwards.
type ColliderHit struct {
	// Entity owning the struck collider. Nil for probe colliders.
	Entity *Entity
	// Collider that was struck.
	Collider *Collider
	// Body is the struck entity's rigid body, or nil.
	Body *RigidBody
	// Direction is the unit vector from the querying collider's center toward
	// the struck collider's center. Zero when both centers coincide.
	Direction Vector2f
}

// Detect runs the axis-aligned overlap test between a (the querying collider)
// and b. On overlap it returns the hit record describing b as seen from a.
func Detect(a, b *Collider) (ColliderHit, bool) {
	if !a.Rect().Overlaps(b.Rect()) {
		return ColliderHit{}, false
	}
	return newHit(b, b.Center().Sub(a.Center()).Normalize()), true
}

func newHit(c *Collider, dir Vector2f) ColliderHit {
	return ColliderHit{
		Entity:    c.Entity(),
		Collider:  c,
		Body:      bodyOf(c),
		Direction: dir,
	}
}

func bodyOf(c *Collider) *RigidBody {
	if e := c.Entity(); e != nil {
		return e.RigidBody()
	}
	return nil
}
