// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// Point is a position in surface pixel space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size is a width/height pair in surface pixel space.
type Size struct {
	W, H float64
}

// RectF is an axis-aligned rectangle in surface pixel space.
type RectF struct {
	Left, Top     float64
	Width, Height float64
}

// NewRectF creates a new pixel-space rectangle.
func NewRectF(left, top, width, height float64) RectF {
	return RectF{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Top + r.Height
}

// AspectRatio returns width / height.
// A zero height yields +Inf (or NaN for an empty rectangle).
func (r RectF) AspectRatio() float64 {
	return r.Width / r.Height
}

// Inset shrinks the rectangle by d on every side.
func (r RectF) Inset(d float64) RectF {
	return RectF{
		Left:   r.Left + d,
		Top:    r.Top + d,
		Width:  r.Width - 2*d,
		Height: r.Height - 2*d,
	}
}

// ContainsClosed reports whether p lies inside the rectangle, edges included.
func (r RectF) ContainsClosed(p Point) bool {
	return !(p.X < r.Left || p.X > r.Right() || p.Y < r.Top || p.Y > r.Bottom())
}

// Overlaps reports whether the interiors of two rectangles intersect.
// Rectangles that only share an edge do not overlap.
func (r RectF) Overlaps(other RectF) bool {
	if r.Left >= other.Right() || other.Left >= r.Right() {
		return false
	}
	if r.Top >= other.Bottom() || other.Top >= r.Bottom() {
		return false
	}
	return true
}

// Union returns the smallest rectangle containing both r and other.
func (r RectF) Union(other RectF) RectF {
	left := math.Min(r.Left, other.Left)
	top := math.Min(r.Top, other.Top)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return RectF{Left: left, Top: top, Width: right - left, Height: bottom - top}
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
