package thicket

// SpatialIndex is the broad phase a Physics mediator queries for candidate
// colliders. Insert and Remove report success as a bool; callers must check
// it. Query returns each matching collider once.
type SpatialIndex interface {
	Insert(c *Collider) bool
	Remove(c *Collider) bool
	Query(r Rect) []*Collider
	// All returns every stored collider once.
	All() []*Collider
	// Len returns the number of distinct stored colliders.
	Len() int
}

var (
	_ SpatialIndex = (*RegionTree)(nil)
	_ SpatialIndex = (*GridIndex)(nil)
)
