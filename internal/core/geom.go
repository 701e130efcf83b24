// Package core provides the fundamental types shared by the game and its hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in world units (fractional cells).
// Entities move in sub-cell steps, so collision works on Box, not Rect.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether b and other intersect after shrinking b by margin
// on every side. A negative margin grows b instead, which makes the test
// more forgiving.
//
// Edges that merely touch never overlap.
func (b Box) Overlaps(other Box, margin float64) bool {
	return b.X+margin < other.X+other.W &&
		b.X+b.W-margin > other.X &&
		b.Y+margin < other.Y+other.H &&
		b.Y+b.H-margin > other.Y
}

// Cell converts the box to the screen rectangle it covers.
func (b Box) Cell() Rect {
	return NewRect(Round(b.X), Round(b.Y), Round(b.W), Round(b.H))
}

// Round converts a world coordinate to the nearest cell.
func Round(v float64) int {
	return int(math.Round(v))
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
