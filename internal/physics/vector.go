package physics

import "math"

// Vector2 is a 2D vector passed by value.
// Fields may be mutated in place (v.X += dx).
type Vector2 struct {
	X, Y float64
}

// Direction constants in screen space (Y grows downward).
var (
	Up    = Vector2{X: 0, Y: -1}
	Down  = Vector2{X: 0, Y: 1}
	Left  = Vector2{X: -1, Y: 0}
	Right = Vector2{X: 1, Y: 0}
	Zero  = Vector2{}
	One   = Vector2{X: 1, Y: 1}
)

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Negate returns -v.
func (v Vector2) Negate() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length.
// The zero vector normalizes to itself instead of NaN.
func (v Vector2) Normalized() Vector2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Reflect mirrors v about the given normal: v - 2(v·n)n.
// The normal is expected to be unit length.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
