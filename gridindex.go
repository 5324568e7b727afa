package thicket

import (
	"math"

	"github.com/solarlune/resolv"
)

const gridColliderTag = "collider"

// GridIndex is a SpatialIndex over a uniform grid of cells, backed by a
// resolv.Space. It suits worlds with a known, bounded extent and many colliders
// of similar size. Cells only narrow the candidate set; every result is
// confirmed against the collider's current rectangle.
type GridIndex struct {
	bounds  Rect
	space   *resolv.Space
	objects map[*Collider]*resolv.Object
	members []*Collider
}

// NewGridIndex creates a grid covering bounds with square cells of the given
// size. A cellSize <= 0 uses 32. Every cell is allocated up front; see
// MaxGridCells.
func NewGridIndex(bounds Rect, cellSize int) *GridIndex {
	if cellSize <= 0 {
		cellSize = 32
	}
	bounds = bounds.Canon()
	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	return &GridIndex{
		bounds:  bounds,
		space:   resolv.NewSpace(w, h, cellSize, cellSize),
		objects: make(map[*Collider]*resolv.Object),
	}
}

// Bounds returns the covered region.
func (g *GridIndex) Bounds() Rect {
	return g.bounds
}

// Insert adds c under its current rectangle. It returns false if c is
// already stored or lies outside the grid.
func (g *GridIndex) Insert(c *Collider) bool {
	if _, ok := g.objects[c]; ok {
		return false
	}
	r := c.Rect().Canon()
	if !r.Overlaps(g.bounds) {
		return false
	}
	obj := resolv.NewObject(r.X-g.bounds.X, r.Y-g.bounds.Y,
		math.Max(r.Width, 1), math.Max(r.Height, 1), gridColliderTag)
	obj.Data = c
	g.space.Add(obj)
	g.objects[c] = obj
	g.members = append(g.members, c)
	return true
}

// Remove deletes c. It returns false if c was not stored.
func (g *GridIndex) Remove(c *Collider) bool {
	obj, ok := g.objects[c]
	if !ok {
		return false
	}
	g.space.Remove(obj)
	delete(g.objects, c)
	for i, m := range g.members {
		if m == c {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	return true
}

// Query returns the colliders whose current rectangle overlaps r, each once.
func (g *GridIndex) Query(r Rect) []*Collider {
	rc := r.Canon()
	if !rc.Overlaps(g.bounds) {
		return nil
	}
	// The probe is grown by one unit per side so that colliders merely
	// touching r share a cell with it.
	probe := resolv.NewObject(rc.X-g.bounds.X-1, rc.Y-g.bounds.Y-1, rc.Width+2, rc.Height+2)
	g.space.Add(probe)
	check := probe.Check(0, 0, gridColliderTag)
	g.space.Remove(probe)
	if check == nil {
		return nil
	}

	var out []*Collider
	seen := make(map[*Collider]struct{})
	for _, obj := range check.ObjectsByTags(gridColliderTag) {
		c, ok := obj.Data.(*Collider)
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if c.Rect().Overlaps(r) {
			out = append(out, c)
		}
	}
	return out
}

// All returns every stored collider in insertion order.
func (g *GridIndex) All() []*Collider {
	out := make([]*Collider, len(g.members))
	copy(out, g.members)
	return out
}

// Len returns the number of stored colliders.
func (g *GridIndex) Len() int {
	return len(g.members)
}
