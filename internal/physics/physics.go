// Package physics provides 2D vector math and collision helpers.
package physics

// BoxesOverlap reports whether two axis-aligned boxes overlap.
// Boxes are given by their top-left corner and size. Touching edges do not count.
func BoxesOverlap(aPos, aSize, bPos, bSize Vector2) bool {
	return aPos.X < bPos.X+bSize.X &&
		aPos.X+aSize.X > bPos.X &&
		aPos.Y < bPos.Y+bSize.Y &&
		aPos.Y+aSize.Y > bPos.Y
}

// CircleBounds returns the top-left corner and size of the square
// enclosing a circle.
func CircleBounds(center Vector2, radius float64) (pos, size Vector2) {
	return Vector2{X: center.X - radius, Y: center.Y - radius},
		Vector2{X: 2 * radius, Y: 2 * radius}
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
