package thicket

import (
	"fmt"
	"testing"
)

// rectCollider returns an unattached collider covering r.
func rectCollider(r Rect) *Collider {
	return &Collider{Position: Vector2f{X: r.X, Y: r.Y}, Size: Vector2f{X: r.Width, Y: r.Height}}
}

func assertColliders(t *testing.T, name string, got, want []*Collider) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d colliders, want %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i].Rect(), want[i].Rect())
		}
	}
}

// occurrences counts how many nodes store c.
func occurrences(tree *RegionTree, c *Collider) int {
	n := 0
	tree.Walk(func(_ Rect, _ int, colliders []*Collider) {
		for _, o := range colliders {
			if o == c {
				n++
			}
		}
	})
	return n
}

func TestRegionTreeDefaults(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 0)
	if tree.Capacity() != DefaultNodeCapacity {
		t.Errorf("Capacity = %d, want %d", tree.Capacity(), DefaultNodeCapacity)
	}
	if tree.Bounds() != (Rect{0, 0, 100, 100}) {
		t.Errorf("Bounds = %v", tree.Bounds())
	}
	if tree.Len() != 0 || len(tree.Query(tree.Bounds())) != 0 {
		t.Error("new tree should be empty")
	}
}

func TestRegionTreeSubdivisionScenario(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 1)
	r1 := rectCollider(Rect{0, 0, 10, 10})
	r2 := rectCollider(Rect{5, 5, 10, 10})

	if !tree.Insert(r1) || !tree.Insert(r2) {
		t.Fatal("Insert failed")
	}

	assertColliders(t, "query overlap", tree.Query(Rect{0, 0, 10, 10}), []*Collider{r1, r2})
	if got := tree.Query(Rect{20, 20, 5, 5}); len(got) != 0 {
		t.Errorf("query empty area = %d colliders, want 0", len(got))
	}

	depths := map[int]int{}
	tree.Walk(func(_ Rect, depth int, colliders []*Collider) {
		depths[depth] += len(colliders)
	})
	if depths[0] != 1 || depths[1] != 1 {
		t.Errorf("colliders per depth = %v, want root 1 and quadrant 1", depths)
	}
}

func TestRegionTreeRejects(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 4)
	c := rectCollider(Rect{10, 10, 5, 5})
	if !tree.Insert(c) {
		t.Fatal("Insert failed")
	}
	if tree.Insert(c) {
		t.Error("second Insert of the same collider should fail")
	}
	if tree.Insert(rectCollider(Rect{200, 200, 5, 5})) {
		t.Error("Insert outside bounds should fail")
	}
	if tree.Remove(rectCollider(Rect{10, 10, 5, 5})) {
		t.Error("Remove of a never-inserted collider should fail")
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1", tree.Len())
	}
}

func TestRegionTreeSpanningColliderDeduplicated(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 1)
	tree.Insert(rectCollider(Rect{0, 0, 10, 10}))
	span := rectCollider(Rect{45, 45, 10, 10})
	tree.Insert(span)

	if n := occurrences(tree, span); n < 2 {
		t.Fatalf("spanning collider stored %d times, want redundant copies", n)
	}
	got := tree.Query(Rect{0, 0, 100, 100})
	if len(got) != 2 {
		t.Errorf("Query = %d colliders, want 2", len(got))
	}
	if len(tree.All()) != 2 || tree.Len() != 2 {
		t.Errorf("All = %d, Len = %d, want 2", len(tree.All()), tree.Len())
	}
}

func TestRegionTreeQueryContainment(t *testing.T) {
	tree := NewRegionTree(Rect{-500, -500, 1000, 1000}, 2)
	var all []*Collider
	for i := 0; i < 40; i++ {
		x := float64(i%8)*100 - 400
		y := float64(i/8)*100 - 250
		c := rectCollider(Rect{x, y, 30, 30})
		all = append(all, c)
		if !tree.Insert(c) {
			t.Fatalf("Insert %d failed", i)
		}
	}

	probes := []Rect{
		{-400, -250, 10, 10},
		{-100, -100, 250, 250},
		{0, 0, -200, -200},
		{-500, -500, 1000, 1000},
		{430, 430, 5, 5},
	}
	for _, probe := range probes {
		t.Run(fmt.Sprint(probe), func(t *testing.T) {
			got := tree.Query(probe)
			want := 0
			for _, c := range all {
				if c.Rect().Overlaps(probe) {
					want++
				}
			}
			if len(got) != want {
				t.Errorf("Query = %d colliders, want %d", len(got), want)
			}
			seen := map[*Collider]bool{}
			for _, c := range got {
				if seen[c] {
					t.Errorf("duplicate %v", c.Rect())
				}
				seen[c] = true
				if !c.Rect().Overlaps(probe) {
					t.Errorf("result %v does not overlap probe", c.Rect())
				}
			}
		})
	}
}

func TestRegionTreeRemove(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 1)
	a := rectCollider(Rect{0, 0, 10, 10})
	span := rectCollider(Rect{45, 45, 10, 10})
	tree.Insert(a)
	tree.Insert(span)

	if !tree.Remove(span) {
		t.Fatal("Remove failed")
	}
	if n := occurrences(tree, span); n != 0 {
		t.Errorf("removed collider still stored %d times", n)
	}
	if tree.Remove(span) {
		t.Error("second Remove should fail")
	}
	assertColliders(t, "after remove", tree.Query(Rect{0, 0, 100, 100}), []*Collider{a})
}

func TestRegionTreeRemoveAfterMove(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 1)
	tree.Insert(rectCollider(Rect{90, 90, 5, 5}))
	c := rectCollider(Rect{10, 10, 5, 5})
	tree.Insert(c)

	c.Position = Vector2f{X: 80, Y: 10}
	if !tree.Remove(c) {
		t.Fatal("Remove after move failed")
	}
	if n := occurrences(tree, c); n != 0 {
		t.Errorf("moved collider still stored %d times", n)
	}
}

func TestRegionTreeCompact(t *testing.T) {
	tree := NewRegionTree(Rect{0, 0, 100, 100}, 1)
	a := rectCollider(Rect{0, 0, 10, 10})
	b := rectCollider(Rect{60, 60, 10, 10})
	tree.Insert(a)
	tree.Insert(b)

	if n := tree.Compact(); n != 0 {
		t.Errorf("Compact with occupied quadrant = %d, want 0", n)
	}

	tree.Remove(b)
	nodes := 0
	tree.Walk(func(Rect, int, []*Collider) { nodes++ })
	if nodes != 5 {
		t.Errorf("nodes before Compact = %d, want 5", nodes)
	}

	if n := tree.Compact(); n != 1 {
		t.Errorf("Compact = %d, want 1", n)
	}
	nodes = 0
	tree.Walk(func(Rect, int, []*Collider) { nodes++ })
	if nodes != 1 {
		t.Errorf("nodes after Compact = %d, want 1", nodes)
	}
	assertColliders(t, "after compact", tree.Query(Rect{0, 0, 100, 100}), []*Collider{a})
}
