package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PhysicsEvent is the flattened form of a thicket.Event. It carries entity
// handles instead of pointers so it can sit in an ECS event queue until the
// next ProcessEvents.
type PhysicsEvent struct {
	Type thicket.EventType
	// Source is the querying entity. NoEntity for pointer probes and rect
	// probes.
	Source thicket.EntityID
	// Target is the struck entity.
	Target    thicket.EntityID
	Direction thicket.Vector2f
	Trigger   bool
	Canvas    bool
	Pointer   thicket.PointerState
}

// PhysicsEventType is the Donburi event type for thicket physics events.
var PhysicsEventType = events.NewEventType[PhysicsEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to PhysicsEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) thicket.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event thicket.Event) {
	PhysicsEventType.Publish(s.world, Flatten(event))
}

// Flatten converts a thicket.Event into a PhysicsEvent.
func Flatten(event thicket.Event) PhysicsEvent {
	pe := PhysicsEvent{
		Type:      event.Type,
		Direction: event.Hit.Direction,
		Pointer:   event.Pointer,
	}
	if event.Source != nil {
		pe.Source = entityID(event.Source.Entity())
	}
	pe.Target = entityID(event.Hit.Entity)
	if c := event.Hit.Collider; c != nil {
		pe.Trigger = c.Trigger
		pe.Canvas = c.Canvas
	}
	return pe
}

func entityID(e *thicket.Entity) thicket.EntityID {
	if e == nil {
		return thicket.NoEntity
	}
	return e.ID
}
