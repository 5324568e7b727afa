package thicket

// Physics mediates every overlap query of a scene. It owns the scene's
// spatial index, filters candidates, runs the detector, and notifies both
// sides of each hit.
type Physics struct {
	index      SpatialIndex
	sink       EventSink
	overCanvas bool
}

// NewPhysics creates a mediator over index. A nil index uses a region tree
// over DefaultBounds with DefaultNodeCapacity.
func NewPhysics(index SpatialIndex) *Physics {
	if index == nil {
		index = NewRegionTree(DefaultBounds, DefaultNodeCapacity)
	}
	return &Physics{index: index}
}

// Index returns the underlying spatial index.
func (p *Physics) Index() SpatialIndex {
	return p.index
}

// SetEventSink sets the optional event sink. Nil disables events.
func (p *Physics) SetEventSink(sink EventSink) {
	p.sink = sink
}

// Register inserts c into the index and binds it to p so its own Overlap
// methods query p. It reports whether the index accepted it.
func (p *Physics) Register(c *Collider) bool {
	c.physics = p
	return p.index.Insert(c)
}

// Unregister removes c from the index.
func (p *Physics) Unregister(c *Collider) bool {
	return p.index.Remove(c)
}

// Overlap returns the first hit of c against gameplay colliders, in index
// traversal order.
func (p *Physics) Overlap(c *Collider) (ColliderHit, bool) {
	hits := p.overlap(c, true)
	if len(hits) == 0 {
		return ColliderHit{}, false
	}
	return hits[0], true
}

// OverlapAll returns every hit of c against gameplay colliders.
func (p *Physics) OverlapAll(c *Collider) []ColliderHit {
	return p.overlap(c, false)
}

// OverlapRect probes r for the first gameplay hit. The probe belongs to no
// entity and is not stored in the index.
func (p *Physics) OverlapRect(r Rect) (ColliderHit, bool) {
	return p.Overlap(probeCollider(r))
}

// OverlapRectAll probes r for every gameplay hit.
func (p *Physics) OverlapRectAll(r Rect) []ColliderHit {
	return p.OverlapAll(probeCollider(r))
}

func (p *Physics) overlap(c *Collider, first bool) []ColliderHit {
	var hits []ColliderHit
	for _, other := range p.index.Query(c.Rect()) {
		if other == c || !other.Active() || other.Canvas {
			continue
		}
		hit, ok := Detect(c, other)
		if !ok {
			continue
		}
		hits = append(hits, hit)
		p.collisionEnter(c, hit)
		if first {
			break
		}
	}
	return hits
}

func (p *Physics) collisionEnter(c *Collider, hit ColliderHit) {
	if c.OnCollisionEnter != nil {
		c.OnCollisionEnter(hit)
	}
	if struck := hit.Collider; struck.OnCollisionEnter != nil {
		struck.OnCollisionEnter(newHit(c, hit.Direction.Negate()))
	}
	if p.sink != nil {
		p.sink.Emit(Event{Type: EventCollisionEnter, Source: c, Hit: hit})
	}
}

// PointerOverlapAll picks non-canvas colliders under the pointer's world
// position and calls their OnPointerEnter.
func (p *Physics) PointerOverlapAll(ptr PointerState) []ColliderHit {
	probe := probeCollider(RectFrom(ptr.World, ptr.size()))
	var hits []ColliderHit
	for _, other := range p.index.Query(probe.Rect()) {
		if !other.Active() || other.IgnorePointer || other.Canvas {
			continue
		}
		hit, ok := Detect(probe, other)
		if !ok {
			continue
		}
		hits = append(hits, hit)
		p.pointerEnter(probe, hit, ptr, false)
	}
	return hits
}

// PointerCanvasOverlapAll picks canvas colliders under the pointer's screen
// position. Each candidate's size is scaled by stretch for the duration of
// its test and restored before any callback runs. Candidates come from the
// index under their unscaled rectangles.
func (p *Physics) PointerCanvasOverlapAll(ptr PointerState, stretch Vector2f) []ColliderHit {
	probe := probeCollider(RectFrom(ptr.Screen, ptr.size()))
	var hits []ColliderHit
	for _, other := range p.index.Query(probe.Rect()) {
		if !other.Active() || other.IgnorePointer || !other.Canvas {
			continue
		}
		size := other.Size
		other.Size = size.Scale(stretch)
		hit, ok := Detect(probe, other)
		other.Size = size
		if !ok {
			continue
		}
		hits = append(hits, hit)
		p.pointerEnter(probe, hit, ptr, true)
	}
	p.overCanvas = len(hits) > 0
	return hits
}

// PointerOverCanvas reports whether the most recent canvas pointer pass hit
// any collider.
func (p *Physics) PointerOverCanvas() bool {
	return p.overCanvas
}

func (p *Physics) pointerEnter(probe *Collider, hit ColliderHit, ptr PointerState, canvas bool) {
	struck := hit.Collider
	if struck.OnPointerEnter != nil {
		struck.OnPointerEnter(PointerContext{
			Entity:   hit.Entity,
			Collider: struck,
			Pointer:  ptr,
			Canvas:   canvas,
		})
	}
	if p.sink != nil {
		t := EventPointerEnter
		if canvas {
			t = EventCanvasPointerEnter
		}
		p.sink.Emit(Event{Type: t, Source: probe, Hit: hit, Pointer: ptr})
	}
}

func probeCollider(r Rect) *Collider {
	return &Collider{
		Position: Vector2f{X: r.X, Y: r.Y},
		Size:     Vector2f{X: r.Width, Y: r.Height},
	}
}
