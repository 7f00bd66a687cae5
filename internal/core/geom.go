// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned bounding box in playfield units.
// Y grows downward, so Top <= Bottom for a well-formed rect.
type Rect struct {
	Top, Left, Bottom, Right float64
}

// NewRect creates a rectangle from its top-left corner and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Top: y, Left: x, Bottom: y + h, Right: x + w}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// OverlapsX reports whether the horizontal ranges of both rects touch or overlap.
// Edges are inclusive.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right >= other.Left && r.Left <= other.Right
}

// Box is an integer rectangle in screen cells.
type Box struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewBox creates a new cell box with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (b Box) Bottom() int {
	return b.Y + b.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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
