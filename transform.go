package thicket

// WorldPosition returns the entity's position in world space.
func (e *Entity) WorldPosition() Vector2f {
	return e.position
}

// LocalPosition returns the entity's offset from its parent's world position.
// For a root entity it equals the world position.
func (e *Entity) LocalPosition() Vector2f {
	return e.localPosition
}

// SetWorldPosition moves the entity to p in world space. Children keep their
// local offsets, so the whole subtree translates rigidly. If the entity has a
// parent, its local position is re-derived from the parent's current world
// position.
func (e *Entity) SetWorldPosition(p Vector2f) {
	e.position = p
	if parent := e.Parent(); parent != nil {
		e.localPosition = p.Sub(parent.position)
	} else {
		e.localPosition = p
	}
	e.propagate()
}

// SetLocalPosition sets the entity's offset from its parent. On a root entity
// this is the same as SetWorldPosition.
func (e *Entity) SetLocalPosition(p Vector2f) {
	parent := e.Parent()
	if parent == nil {
		e.SetWorldPosition(p)
		return
	}
	e.position = parent.position.Add(p)
	e.localPosition = p
	e.propagate()
}

// Translate moves the entity by d in world space.
func (e *Entity) Translate(d Vector2f) {
	e.SetWorldPosition(e.position.Add(d))
}

// propagate recomputes every descendant's world position from its unchanged
// local offset.
func (e *Entity) propagate() {
	for _, id := range e.children {
		child := e.world.Get(id)
		if child == nil {
			continue
		}
		child.position = e.position.Add(child.localPosition)
		child.propagate()
	}
}
