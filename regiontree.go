package thicket

import "math"

// DefaultNodeCapacity is the per-node capacity used when none is given.
const DefaultNodeCapacity = 16

// DefaultBounds is the root region of a scene's index. It is large enough to
// be effectively unbounded for practical entity coordinates.
var DefaultBounds = Rect{
	X:      math.MinInt32 / 2,
	Y:      math.MinInt32 / 2,
	Width:  math.MaxInt32,
	Height: math.MaxInt32,
}

// RegionTree is a mutable quadtree over collider rectangles.
//
// A node stores colliders in a flat list until one more would exceed its
// capacity. From then on the node is subdivided and every further collider is
// offered to all four quadrants, each of which keeps it if it overlaps. A
// collider spanning a quadrant boundary is therefore stored more than once;
// Query and All deduplicate by identity.
//
// Removal never merges nodes. Call Compact to fold empty quadrants back.
type RegionTree struct {
	root *regionNode

	// placed records, for every stored collider, the union of the rectangles
	// it was inserted with. Every node holding the collider overlaps it, so
	// Remove can prune by it even if the collider moved since.
	placed map[*Collider]Rect
}

type regionNode struct {
	bounds    Rect
	capacity  int
	parent    *regionNode
	quads     *[4]*regionNode
	colliders []*Collider
}

// NewRegionTree creates an empty tree covering bounds. A capacity <= 0 uses
// DefaultNodeCapacity.
func NewRegionTree(bounds Rect, capacity int) *RegionTree {
	if capacity <= 0 {
		capacity = DefaultNodeCapacity
	}
	return &RegionTree{
		root:   &regionNode{bounds: bounds, capacity: capacity},
		placed: make(map[*Collider]Rect),
	}
}

// Bounds returns the root region.
func (t *RegionTree) Bounds() Rect {
	return t.root.bounds
}

// Capacity returns the per-node capacity.
func (t *RegionTree) Capacity() int {
	return t.root.capacity
}

// Insert stores c under its current rectangle. It returns false if the
// rectangle does not overlap the tree's bounds or if c is already stored at
// the root.
func (t *RegionTree) Insert(c *Collider) bool {
	r := c.Rect()
	if !t.root.insert(c, r) {
		return false
	}
	if prev, ok := t.placed[c]; ok {
		r = union(prev, r)
	}
	t.placed[c] = r
	return true
}

func (n *regionNode) insert(c *Collider, r Rect) bool {
	if n.holds(c) || !r.Overlaps(n.bounds) {
		return false
	}
	if len(n.colliders)+1 > n.capacity {
		if n.quads == nil {
			n.subdivide()
		}
		for _, q := range n.quads {
			q.insert(c, r)
		}
		return true
	}
	n.colliders = append(n.colliders, c)
	return true
}

func (n *regionNode) subdivide() {
	var quads [4]*regionNode
	for i, b := range n.bounds.quadrants() {
		quads[i] = &regionNode{bounds: b, capacity: n.capacity, parent: n}
	}
	n.quads = &quads
}

func (n *regionNode) holds(c *Collider) bool {
	for _, o := range n.colliders {
		if o == c {
			return true
		}
	}
	return false
}

// Remove deletes every stored copy of c. It returns false if c was not stored.
func (t *RegionTree) Remove(c *Collider) bool {
	r, ok := t.placed[c]
	if !ok {
		return false
	}
	delete(t.placed, c)
	return t.root.remove(c, r)
}

func (n *regionNode) remove(c *Collider, r Rect) bool {
	if !r.Overlaps(n.bounds) {
		return false
	}
	removed := false
	if n.quads != nil {
		for _, q := range n.quads {
			if q.remove(c, r) {
				removed = true
			}
		}
	}
	for i, o := range n.colliders {
		if o == c {
			copy(n.colliders[i:], n.colliders[i+1:])
			n.colliders[len(n.colliders)-1] = nil
			n.colliders = n.colliders[:len(n.colliders)-1]
			removed = true
			break
		}
	}
	return removed
}

// Query returns the colliders whose current rectangle overlaps r, each once,
// in traversal order (node list first, then quadrants TL, TR, BL, BR).
func (t *RegionTree) Query(r Rect) []*Collider {
	var out []*Collider
	seen := make(map[*Collider]struct{})
	t.root.query(r, seen, &out)
	return out
}

func (n *regionNode) query(r Rect, seen map[*Collider]struct{}, out *[]*Collider) {
	if !r.Overlaps(n.bounds) {
		return
	}
	for _, c := range n.colliders {
		if _, dup := seen[c]; dup {
			continue
		}
		if c.Rect().Overlaps(r) {
			seen[c] = struct{}{}
			*out = append(*out, c)
		}
	}
	if n.quads != nil {
		for _, q := range n.quads {
			q.query(r, seen, out)
		}
	}
}

// All returns every stored collider once, in traversal order.
func (t *RegionTree) All() []*Collider {
	out := make([]*Collider, 0, len(t.placed))
	seen := make(map[*Collider]struct{}, len(t.placed))
	t.root.walk(0, func(n *regionNode, _ int) {
		for _, c := range n.colliders {
			if _, dup := seen[c]; !dup {
				seen[c] = struct{}{}
				out = append(out, c)
			}
		}
	})
	return out
}

// Len returns the number of distinct stored colliders.
func (t *RegionTree) Len() int {
	return len(t.placed)
}

// Walk calls fn for every node, parents before children, with the node's
// bounds, its depth (root is 0), and the colliders stored at that node. The
// slice MUST NOT be retained or mutated.
func (t *RegionTree) Walk(fn func(bounds Rect, depth int, colliders []*Collider)) {
	t.root.walk(0, func(n *regionNode, depth int) {
		fn(n.bounds, depth, n.colliders)
	})
}

func (n *regionNode) walk(depth int, fn func(*regionNode, int)) {
	fn(n, depth)
	if n.quads != nil {
		for _, q := range n.quads {
			q.walk(depth+1, fn)
		}
	}
}

// Compact folds every subdivided node whose four quadrants are empty leaves
// back into a leaf, bottom-up, and returns the number of nodes folded.
// Insert and Remove never call it.
func (t *RegionTree) Compact() int {
	return t.root.compact()
}

func (n *regionNode) compact() int {
	if n.quads == nil {
		return 0
	}
	folded := 0
	for _, q := range n.quads {
		folded += q.compact()
	}
	for _, q := range n.quads {
		if q.quads != nil || len(q.colliders) > 0 {
			return folded
		}
	}
	n.quads = nil
	return folded + 1
}

func union(a, b Rect) Rect {
	alo, ahi := a.Min(), a.Max()
	blo, bhi := b.Min(), b.Max()
	lo := Vector2f{math.Min(alo.X, blo.X), math.Min(alo.Y, blo.Y)}
	hi := Vector2f{math.Max(ahi.X, bhi.X), math.Max(ahi.Y, bhi.Y)}
	return RectFrom(lo, hi.Sub(lo))
}
