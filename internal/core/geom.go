// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned box in logical pixels used for collision detection.
// Positions are floating point because cars move by fractional amounts.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are closed-open, so rectangles that only touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return SpansOverlap(r.X, r.Right(), other.X, other.Right()) &&
		SpansOverlap(r.Y, r.Bottom(), other.Y, other.Bottom())
}

// SpansOverlap reports whether [a0, a1) and [b0, b1) share any point.
func SpansOverlap(a0, a1, b0, b1 float64) bool {
	return a1 > b0 && a0 < b1
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FloorDiv divides rounding toward negative infinity, so sprites that start
// above the screen map to the right cell row.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
