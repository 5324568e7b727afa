package thicket

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Vector2 is an integer 2D vector. Values are immutable; every operation
// returns a new vector.
type Vector2 struct {
	X, Y int
}

// Vector2f is a floating-point 2D vector used for positions, offsets, sizes,
// velocities, and directions throughout the API.
type Vector2f struct {
	X, Y float64
}

var (
	// Vector2Zero and Vector2One are the integer zero and unit-diagonal vectors.
	Vector2Zero = Vector2{0, 0}
	Vector2One  = Vector2{1, 1}

	// Vector2fZero and Vector2fOne are the floating-point equivalents.
	Vector2fZero = Vector2f{0, 0}
	Vector2fOne  = Vector2f{1, 1}
)

// --- Vector2 ---

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Mul scales v by s, truncating each component toward zero.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{int(float64(v.X) * s), int(float64(v.Y) * s)}
}

// Div divides v by s, truncating each component toward zero.
// Dividing by zero logs a warning and returns the zero vector.
func (v Vector2) Div(s float64) Vector2 {
	if s == 0 {
		logger.Warn("vector divided by zero", zap.Stringer("vector", v))
		return Vector2Zero
	}
	return Vector2{int(float64(v.X) / s), int(float64(v.Y) / s)}
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return v.Float().Magnitude()
}

// Normalize returns the unit vector pointing along v.
// The zero vector has no direction: a warning is logged and the zero vector
// is returned.
func (v Vector2) Normalize() Vector2f {
	if v.X == 0 && v.Y == 0 {
		logger.Warn("normalizing zero vector", zap.Stringer("vector", v))
		return Vector2fZero
	}
	return v.Float().Normalize()
}

// Equal reports whether v and o are component-wise equal.
func (v Vector2) Equal(o Vector2) bool {
	return v == o
}

// Float converts v to a Vector2f.
func (v Vector2) Float() Vector2f {
	return Vector2f{float64(v.X), float64(v.Y)}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// --- Vector2f ---

// Add returns v + o.
func (v Vector2f) Add(o Vector2f) Vector2f {
	return Vector2f{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2f) Sub(o Vector2f) Vector2f {
	return Vector2f{v.X - o.X, v.Y - o.Y}
}

// Mul scales v by s.
func (v Vector2f) Mul(s float64) Vector2f {
	return Vector2f{v.X * s, v.Y * s}
}

// Scale multiplies v component-wise by o.
func (v Vector2f) Scale(o Vector2f) Vector2f {
	return Vector2f{v.X * o.X, v.Y * o.Y}
}

// Div divides v by s. Dividing by zero logs a warning and returns the IEEE
// result (infinities, or NaN for a zero component).
func (v Vector2f) Div(s float64) Vector2f {
	if s == 0 {
		logger.Warn("vector divided by zero", zap.Stringer("vector", v))
	}
	return Vector2f{v.X / s, v.Y / s}
}

// Magnitude returns the Euclidean length of v.
func (v Vector2f) Magnitude() float64 {
	return v.vec().Len()
}

// Normalize returns the unit vector pointing along v, or the zero vector
// when v has zero length.
func (v Vector2f) Normalize() Vector2f {
	if v.Magnitude() == 0 {
		return Vector2fZero
	}
	n := v.vec().Normalize()
	return Vector2f{n.X(), n.Y()}
}

// Abs returns v with both components made non-negative.
func (v Vector2f) Abs() Vector2f {
	return Vector2f{math.Abs(v.X), math.Abs(v.Y)}
}

// Negate returns -v.
func (v Vector2f) Negate() Vector2f {
	return Vector2f{-v.X, -v.Y}
}

// Equal reports whether v and o are component-wise equal.
func (v Vector2f) Equal(o Vector2f) bool {
	return v == o
}

// ApproxEqual reports whether v and o are equal within a relative tolerance.
func (v Vector2f) ApproxEqual(o Vector2f) bool {
	return v.vec().ApproxEqual(o.vec())
}

// Int converts v to a Vector2, truncating toward zero.
func (v Vector2f) Int() Vector2 {
	return Vector2{int(v.X), int(v.Y)}
}

func (v Vector2f) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vector2f) vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}
