package thicket

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
		{"shared edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, true},
		{"shared corner", Rect{0, 0, 10, 10}, Rect{10, 10, 5, 5}, true},
		{"gap on x only", Rect{0, 0, 10, 10}, Rect{10.5, 0, 10, 10}, false},
		{"negative size", Rect{10, 10, -10, -10}, Rect{2, 2, 2, 2}, true},
		{"negative size disjoint", Rect{0, 0, -5, -5}, Rect{1, 1, 2, 2}, false},
		{"degenerate point", Rect{5, 5, 0, 0}, Rect{0, 0, 10, 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: -10, Height: 10}
	for _, p := range []Vector2f{{0, 10}, {5, 15}, {10, 20}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	if r.Contains(Vector2f{X: 11, Y: 15}) {
		t.Error("Contains outside point")
	}
}

func TestRectCanon(t *testing.T) {
	got := Rect{X: 10, Y: 0, Width: -4, Height: 6}.Canon()
	want := Rect{X: 6, Y: 0, Width: 4, Height: 6}
	if got != want {
		t.Errorf("Canon = %v, want %v", got, want)
	}
	assertVec(t, "Center", want.Center(), Vector2f{X: 8, Y: 3})
	if got := want.Translate(Vector2f{X: 1, Y: -1}); got != (Rect{X: 7, Y: -1, Width: 4, Height: 6}) {
		t.Errorf("Translate = %v", got)
	}
}

func TestRectQuadrants(t *testing.T) {
	q := Rect{X: 0, Y: 0, Width: 100, Height: 50}.quadrants()
	want := [4]Rect{
		{0, 0, 50, 25},
		{50, 0, 50, 25},
		{0, 25, 50, 25},
		{50, 25, 50, 25},
	}
	if q != want {
		t.Errorf("quadrants = %v, want %v", q, want)
	}
}
