// Package core provides the geometry, input and screen types shared by the game and its hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Dist returns the euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates grow right and down, matching screen space.
type Rect struct {
	Left, Top     float64
	Right, Bottom float64
}

// NewRect creates a rectangle from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectAround creates a rectangle centered on c with the given size.
func RectAround(c Vec, w, h float64) Rect {
	return Rect{
		Left:   c.X - w/2,
		Top:    c.Y - h/2,
		Right:  c.X + w/2,
		Bottom: c.Y + h/2,
	}
}

// Margin creates a square exclusion box reaching m units from c on each axis.
func Margin(c Vec, m float64) Rect {
	return RectAround(c, 2*m, 2*m)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Left >= other.Right || other.Left >= r.Right {
		return false
	}
	if r.Top >= other.Bottom || other.Top >= r.Bottom {
		return false
	}
	return true
}

// ContainsStrict reports whether p lies strictly inside the rectangle.
// Points on an edge are outside, which is what exclusion zones need.
func (r Rect) ContainsStrict(p Vec) bool {
	return p.X > r.Left && p.X < r.Right && p.Y > r.Top && p.Y < r.Bottom
}

// SpansX reports whether x lies strictly between the left and right edges.
func (r Rect) SpansX(x float64) bool {
	return x > r.Left && x < r.Right
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
