// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal host. It has no Bubble Tea dependency so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a pixel-space box. X/Y is the top-left corner, Y grows downward.
type RectF struct {
	X, Y float64
	W, H float64
}

// CenteredRectF builds a box of size w×h centered on (cx, cy).
func CenteredRectF(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// OverlapsX reports strict horizontal overlap. Touching edges do not count.
func (r RectF) OverlapsX(other RectF) bool {
	return r.Right() > other.Left() && r.Left() < other.Right()
}

// OverlapsY reports strict vertical overlap.
func (r RectF) OverlapsY(other RectF) bool {
	return r.Bottom() > other.Top() && r.Top() < other.Bottom()
}

// ToCells projects the box onto a cell grid where one cell spans cellW×cellH
// pixels. Partially covered cells are included; the result is at least 1×1.
func (r RectF) ToCells(cellW, cellH float64) Rect {
	x0 := int(math.Floor(r.Left() / cellW))
	y0 := int(math.Floor(r.Top() / cellH))
	x1 := int(math.Ceil(r.Right() / cellW))
	y1 := int(math.Ceil(r.Bottom() / cellH))
	return NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
