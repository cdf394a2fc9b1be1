// Package core provides fundamental types and utilities shared by the game
// and its hosts. It contains no external dependencies (especially no Bubble
// Tea or Ebitengine) to keep game logic pure and testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is an axis-aligned box in logical pixels, stored by its edges.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF creates a box from a top-left corner and a size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// Intersects reports whether the two boxes share a region of positive area.
// Boxes that only touch along an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.Left >= other.Right || other.Left >= r.Right {
		return false
	}
	if r.Top >= other.Bottom || other.Top >= r.Bottom {
		return false
	}
	return true
}

// Overlaps reports whether the two boxes intersect or touch.
func (r RectF) Overlaps(other RectF) bool {
	return !(r.Right < other.Left || r.Left > other.Right ||
		r.Bottom < other.Top || r.Top > other.Bottom)
}

// ContainsSpan reports whether [lo, hi] lies within [r.Top, r.Bottom],
// edges included.
func (r RectF) ContainsSpan(lo, hi float64) bool {
	return lo >= r.Top && hi <= r.Bottom
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
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
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
