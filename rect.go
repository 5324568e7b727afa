package thicket

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height may be negative;
// every test works on the min/max projection of each axis.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFrom builds a Rect from a position and a size.
func RectFrom(pos, size Vector2f) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Vector2f {
	return Vector2f{math.Min(r.X, r.X+r.Width), math.Min(r.Y, r.Y+r.Height)}
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Vector2f {
	return Vector2f{math.Max(r.X, r.X+r.Width), math.Max(r.Y, r.Y+r.Height)}
}

// Canon returns the same area with non-negative Width and Height.
func (r Rect) Canon() Rect {
	lo, hi := r.Min(), r.Max()
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2f {
	return Vector2f{r.X + r.Width/2, r.Y + r.Height/2}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vector2f) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether the point p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Vector2f) bool {
	lo, hi := r.Min(), r.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y
}

// Overlaps reports whether r and other overlap on both axes using closed
// intervals. Rectangles that only share an edge or a corner overlap.
func (r Rect) Overlaps(other Rect) bool {
	return math.Max(r.X, r.X+r.Width) >= math.Min(other.X, other.X+other.Width) &&
		math.Min(r.X, r.X+r.Width) <= math.Max(other.X, other.X+other.Width) &&
		math.Max(r.Y, r.Y+r.Height) >= math.Min(other.Y, other.Y+other.Height) &&
		math.Min(r.Y, r.Y+r.Height) <= math.Max(other.Y, other.Y+other.Height)
}

// String returns a readable form of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X, r.Y, r.Width, r.Height)
}

// quadrants splits r into its four equal sub-rectangles in the order
// top-left, top-right, bottom-left, bottom-right.
func (r Rect) quadrants() [4]Rect {
	hw, hh := r.Width/2, r.Height/2
	return [4]Rect{
		{X: r.X, Y: r.Y, Width: hw, Height: hh},
		{X: r.X + hw, Y: r.Y, Width: hw, Height: hh},
		{X: r.X, Y: r.Y + hh, Width: hw, Height: hh},
		{X: r.X + hw, Y: r.Y + hh, Width: hw, Height: hh},
	}
}
