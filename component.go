package thicket

// Component is a behavior attached to an Entity. Implementations embed
// BaseComponent, which supplies the entity link and the active flag, and opt
// into lifecycle hooks by implementing Starter, Updater, LateUpdater, or
// Destroyer.
type Component interface {
	// Entity returns the owning entity, or nil when detached.
	Entity() *Entity
	// Active reports whether the component takes part in the tick.
	Active() bool
	// SetActive enables or disables the component.
	SetActive(active bool)

	attach(e *Entity)
}

// Starter is implemented by components that need setup when their entity
// enters a scene (or when added to an entity that already is in one).
type Starter interface {
	Start()
}

// Updater is implemented by components that run every tick.
type Updater interface {
	Update(dt float64)
}

// LateUpdater is implemented by components that run after Update each tick.
type LateUpdater interface {
	LateUpdate(dt float64)
}

// Destroyer is implemented by components that release resources when their
// entity leaves a scene.
type Destroyer interface {
	Destroy()
}

// BaseComponent provides the Component bookkeeping. The zero value is an
// active, detached component.
type BaseComponent struct {
	entity   *Entity
	inactive bool
}

// Entity returns the owning entity, or nil when detached.
func (b *BaseComponent) Entity() *Entity {
	return b.entity
}

// Active reports whether the component takes part in the tick.
func (b *BaseComponent) Active() bool {
	return !b.inactive
}

// SetActive enables or disables the component.
func (b *BaseComponent) SetActive(active bool) {
	b.inactive = !active
}

func (b *BaseComponent) attach(e *Entity) {
	b.entity = e
}

func startComponent(c Component) {
	if s, ok := c.(Starter); ok {
		s.Start()
	}
}

func destroyComponent(c Component) {
	if d, ok := c.(Destroyer); ok {
		d.Destroy()
	}
}
