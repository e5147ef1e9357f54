// Package core provides the fundamental types shared by the simulation and
// the platform layers: rectangles, the input snapshot and the cell screen.
// It has no dependency on any frontend library so game logic stays pure and
// testable.
package core

// Rect is an axis-aligned rectangle in window pixel space.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle from a position and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Inset shrinks the rectangle: the origin moves by (dx, dy) and the size
// shrinks by (dw, dh).
func (r Rect) Inset(dx, dy, dw, dh float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - dw, H: r.H - dh}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
