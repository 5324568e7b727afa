package thicket

import (
	"time"

	"go.uber.org/zap"
)

// Scene is the simulation context. It owns the entity arena and the physics
// mediator, and runs the per-tick component pass followed by pointer picking.
//
// The active entity list is copy-on-write: entities added during a tick are
// first updated on the next tick, and entities removed during a tick are
// skipped for the rest of it.
type Scene struct {
	Name string

	cfg      Config
	world    *World
	physics  *Physics
	entities []*Entity
	debug    bool

	camera  *Camera
	pointer PointerSource
	display DisplaySource
}

// NewScene creates an empty scene configured by cfg. A config that fails
// Validate falls back to DefaultConfig and logs a warning.
func NewScene(name string, cfg Config) *Scene {
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid scene config, using defaults", zap.String("scene", name), zap.Error(err))
		cfg = DefaultConfig()
	}
	s := &Scene{
		Name:    name,
		cfg:     cfg,
		world:   NewWorld(),
		physics: NewPhysics(cfg.newIndex()),
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Config returns the configuration the scene was created with.
func (s *Scene) Config() Config {
	return s.cfg
}

// World returns the scene's entity arena.
func (s *Scene) World() *World {
	return s.world
}

// Physics returns the scene's physics mediator.
func (s *Scene) Physics() *Physics {
	return s.physics
}

// NewEntity allocates an entity in the scene's arena. It takes part in the
// tick only once passed to Add.
func (s *Scene) NewEntity(name string) *Entity {
	return s.world.NewEntity(name)
}

// Entities returns the active entity list. The returned slice MUST NOT be
// mutated by the caller.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// Add activates e and its descendants in the scene and starts their
// components. Adding an entity that is already in the scene is a no-op.
// Panics if e belongs to another World.
func (s *Scene) Add(e *Entity) {
	if e.world != s.world {
		panic("thicket: entity belongs to a different world")
	}
	if globalDebug {
		debugCheckDisposed(e, "Scene.Add")
	}
	if e.scene == s {
		return
	}
	e.scene = s
	s.entities = append(s.entities[:len(s.entities):len(s.entities)], e)
	for _, c := range e.components {
		startComponent(c)
	}
	for _, child := range e.Children() {
		s.Add(child)
	}
}

// AddAt moves e to the world position p and adds it.
func (s *Scene) AddAt(e *Entity, p Vector2f) {
	e.SetWorldPosition(p)
	s.Add(e)
}

// Remove destroys e's components, removes its descendants, and drops it from
// the active list. No-op if e is not in the scene.
func (s *Scene) Remove(e *Entity) {
	if e.scene != s {
		return
	}
	for _, c := range e.components {
		destroyComponent(c)
	}
	for _, child := range e.Children() {
		s.Remove(child)
	}
	e.scene = nil
	for i, o := range s.entities {
		if o == e {
			next := make([]*Entity, 0, len(s.entities)-1)
			next = append(next, s.entities[:i]...)
			s.entities = append(next, s.entities[i+1:]...)
			break
		}
	}
}

// SetCamera sets the camera advanced at the end of every tick. Nil removes
// it.
func (s *Scene) SetCamera(cam *Camera) {
	s.camera = cam
}

// Camera returns the scene camera, or nil.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetPointerSource sets the input collaborator used for pointer picking.
// Nil disables picking.
func (s *Scene) SetPointerSource(src PointerSource) {
	s.pointer = src
}

// SetDisplaySource sets the collaborator supplying the canvas stretch factor.
// Nil uses {1, 1}.
func (s *Scene) SetDisplaySource(src DisplaySource) {
	s.display = src
}

// SetEventSink forwards collision and pointer events to sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.physics.SetEventSink(sink)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-entity
// access panics, tree depth and child count warnings are logged, and
// per-tick timing is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Update runs one tick of dt seconds: every active component of every active
// entity runs Update then LateUpdate, the camera advances, then pointer
// picking runs canvas first, then world.
func (s *Scene) Update(dt float64) {
	var stats tickStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	snapshot := s.entities
	for _, e := range snapshot {
		if e.scene != s || !e.active {
			continue
		}
		for _, c := range e.components {
			if e.scene != s {
				break
			}
			// Components removed earlier in this tick are detached.
			if c.Entity() != e || !c.Active() {
				continue
			}
			if u, ok := c.(Updater); ok {
				u.Update(dt)
			}
			if l, ok := c.(LateUpdater); ok {
				l.LateUpdate(dt)
			}
		}
	}

	if s.camera != nil {
		s.camera.Update(dt)
	}

	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	s.pick()

	if s.debug {
		stats.pointerTime = time.Since(t0)
		stats.entities = len(s.entities)
		stats.colliders = s.physics.Index().Len()
		s.debugLog(stats)
	}
}

// pick runs the canvas and world pointer passes.
func (s *Scene) pick() {
	if s.pointer == nil {
		return
	}
	ptr := s.pointer.Pointer()
	if ptr.Size.X == 0 && ptr.Size.Y == 0 {
		ptr.Size = s.cfg.PointerSize
	}
	stretch := Vector2fOne
	if s.display != nil {
		stretch = s.display.StretchFactor()
	}
	s.physics.PointerCanvasOverlapAll(ptr, stretch)
	s.physics.PointerOverlapAll(ptr)
}
