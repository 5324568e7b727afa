package thicket

import "slices"

// Entity is a positioned node in the scene hierarchy that owns behavior
// components. Entities are created by a World (or a Scene, which owns one)
// and address their parent and children through handles.
type Entity struct {
	// Identity
	ID   EntityID
	Name string

	world *World
	scene *Scene

	// Transform (see transform.go)
	position      Vector2f
	localPosition Vector2f

	// Hierarchy
	parent   EntityID
	children []EntityID

	// Behavior
	components []Component
	collider   *Collider
	body       *RigidBody

	active   bool
	disposed bool
}

// World returns the arena that owns this entity.
func (e *Entity) World() *World {
	return e.world
}

// Scene returns the scene the entity is currently active in, or nil.
func (e *Entity) Scene() *Scene {
	return e.scene
}

// --- Tree manipulation ---

// Parent returns the parent entity, or nil for a root.
func (e *Entity) Parent() *Entity {
	return e.world.Get(e.parent)
}

// Children returns the live children in insertion order.
// The slice is freshly allocated and may be kept by the caller.
func (e *Entity) Children() []*Entity {
	out := make([]*Entity, 0, len(e.children))
	for _, id := range e.children {
		if c := e.world.Get(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// NumChildren returns the number of children.
func (e *Entity) NumChildren() int {
	return len(e.children)
}

// AddChild makes child a child of e. Adding an existing child is a no-op.
// If child already has another parent, it is detached from it first.
// Panics if child is nil, belongs to another World, or is an ancestor of e.
func (e *Entity) AddChild(child *Entity) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	if e.hasChild(child.ID) {
		return
	}
	child.SetParent(e)
}

// AddChildAt makes child a child of e and then moves it to the world
// position p. Adding an existing child is a no-op and does not move it.
func (e *Entity) AddChildAt(child *Entity, p Vector2f) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	if e.hasChild(child.ID) {
		return
	}
	child.SetParent(e)
	child.SetWorldPosition(p)
}

// RemoveChild detaches child from e, leaving it where it is in world space.
// No-op if child is not a child of e.
func (e *Entity) RemoveChild(child *Entity) {
	if child == nil || !e.hasChild(child.ID) {
		return
	}
	child.SetParent(nil)
}

// RemoveFromParent detaches e from its parent. No-op for a root.
func (e *Entity) RemoveFromParent() {
	if p := e.Parent(); p != nil {
		p.RemoveChild(e)
	}
}

// SetParent re-parents e under p (nil makes e a root). The parent's child
// list is kept in sync, and the current world position is re-applied so the
// entity does not move in world space; only its local position changes.
func (e *Entity) SetParent(p *Entity) {
	if p != nil {
		if p.world != e.world {
			panic("thicket: parent belongs to a different world")
		}
		if isAncestor(e, p) {
			panic("thicket: parenting would create a cycle")
		}
		if globalDebug {
			debugCheckDisposed(p, "SetParent (parent)")
			debugCheckDisposed(e, "SetParent (child)")
		}
	}
	if old := e.Parent(); old != nil && old != p {
		old.removeChildID(e.ID)
	}
	if p != nil {
		if !p.hasChild(e.ID) {
			p.children = append(p.children, e.ID)
		}
		e.parent = p.ID
	} else {
		e.parent = NoEntity
	}
	e.SetWorldPosition(e.position)
	if globalDebug && p != nil {
		debugCheckTreeDepth(e)
		debugCheckChildCount(p)
	}
}

// --- Components ---

// AddComponent attaches c to e. Attaching the same component twice is a
// no-op. The first *Collider and *RigidBody attached fill the entity's typed
// capability slots. If e is already active in a scene, c is started.
func (e *Entity) AddComponent(c Component) {
	if c == nil {
		panic("thicket: cannot add nil component")
	}
	for _, existing := range e.components {
		if existing == c {
			return
		}
	}
	c.attach(e)
	e.components = append(e.components, c)
	e.fillSlot(c)
	if e.scene != nil {
		startComponent(c)
	}
}

// RemoveComponent detaches c from e, destroying it first if e is active in
// a scene. No-op if c is not attached to e.
func (e *Entity) RemoveComponent(c Component) {
	for i, existing := range e.components {
		if existing != c {
			continue
		}
		if e.scene != nil {
			destroyComponent(c)
		}
		// Copy so a tick iterating the old slice is not disturbed.
		e.components = slices.Delete(slices.Clone(e.components), i, i+1)
		c.attach(nil)
		e.clearSlot(c)
		return
	}
}

// Components returns the attached components. The returned slice MUST NOT be
// mutated by the caller.
func (e *Entity) Components() []Component {
	return e.components
}

// Collider returns the entity's collider capability, or nil.
func (e *Entity) Collider() *Collider {
	return e.collider
}

// RigidBody returns the entity's rigid-body capability, or nil.
func (e *Entity) RigidBody() *RigidBody {
	return e.body
}

func (e *Entity) fillSlot(c Component) {
	switch v := c.(type) {
	case *Collider:
		if e.collider == nil {
			e.collider = v
		}
	case *RigidBody:
		if e.body == nil {
			e.body = v
		}
	}
}

func (e *Entity) clearSlot(c Component) {
	switch c.(type) {
	case *Collider:
		if e.collider == c {
			e.collider = nil
		}
	case *RigidBody:
		if e.body == c {
			e.body = nil
		}
	default:
		return
	}
	for _, other := range e.components {
		e.fillSlot(other)
	}
}

// --- Activity ---

// Active reports whether the entity's components take part in the tick.
func (e *Entity) Active() bool {
	return e.active
}

// SetActive sets the active flag on e, all of its components, and
// recursively on its children.
func (e *Entity) SetActive(active bool) {
	e.active = active
	for _, c := range e.components {
		c.SetActive(active)
	}
	for _, child := range e.Children() {
		child.SetActive(active)
	}
}

// --- Disposal ---

// Dispose removes e from its scene and parent, disposes every descendant,
// and frees e's slot in the World. Outstanding handles to e resolve to nil
// afterwards.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Entity) dispose() {
	if e.scene != nil {
		e.scene.Remove(e)
	}
	for _, child := range e.Children() {
		child.parent = NoEntity
		child.dispose()
	}
	e.disposed = true
	e.children = nil
	for _, c := range e.components {
		c.attach(nil)
	}
	e.components = nil
	e.collider = nil
	e.body = nil
	e.world.release(e)
}

// IsDisposed reports whether e has been disposed.
func (e *Entity) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of node's ancestors.
func isAncestor(candidate, node *Entity) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}

func (e *Entity) hasChild(id EntityID) bool {
	for _, c := range e.children {
		if c == id {
			return true
		}
	}
	return false
}

// removeChildID removes id from e.children without touching the child.
func (e *Entity) removeChildID(id EntityID) {
	for i, c := range e.children {
		if c == id {
			copy(e.children[i:], e.children[i+1:])
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
