package thicket

// EventType identifies the kind of an Event.
type EventType uint8

const (
	EventCollisionEnter     EventType = iota // a gameplay overlap query found a hit
	EventPointerEnter                        // a world pointer query hit a collider
	EventCanvasPointerEnter                  // a canvas pointer query hit a collider
)

// String returns the event type's name.
func (t EventType) String() string {
	switch t {
	case EventCollisionEnter:
		return "collision-enter"
	case EventPointerEnter:
		return "pointer-enter"
	case EventCanvasPointerEnter:
		return "canvas-pointer-enter"
	default:
		return "unknown"
	}
}

// Event is the tagged record emitted to an EventSink for every collision and
// pointer hit, alongside the collider callbacks.
type Event struct {
	Type EventType
	// Source is the querying collider. For pointer events it is the pointer
	// probe, which has no entity.
	Source *Collider
	// Hit describes the struck collider as seen from Source.
	Hit ColliderHit
	// Pointer is the pointer state for pointer events.
	Pointer PointerState
}

// EventSink receives events from a Physics mediator. It is called
// synchronously during the query that produced the event.
type EventSink interface {
	Emit(event Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(event).
func (f EventSinkFunc) Emit(event Event) {
	f(event)
}

// PointerContext is passed to Collider.OnPointerEnter.
type PointerContext struct {
	Entity   *Entity
	Collider *Collider
	Pointer  PointerState
	// Canvas is true when the hit came from the canvas pass.
	Canvas bool
}
