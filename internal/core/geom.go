// Package core provides fundamental types and utilities for beamfight.
// It contains no external dependencies (no Ebiten, no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a signed integer pair used for velocities and facing directions.
type Vec struct {
	X, Y int
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Rect represents an axis-aligned bounding box used for placement and collision detection.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// WithCenter returns a copy of the rectangle moved so its center is (cx, cy).
func (r Rect) WithCenter(cx, cy int) Rect {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
	return r
}

// Move returns a copy of the rectangle translated by v.
func (r Rect) Move(v Vec) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Contained reports whether r lies within a w×h area anchored at the origin,
// separately for the horizontal and vertical axis.
func Contained(r Rect, w, h int) (horizontal, vertical bool) {
	horizontal, vertical = true, true
	if r.X < 0 || w < r.Right() {
		horizontal = false
	}
	if r.Y < 0 || h < r.Bottom() {
		vertical = false
	}
	return horizontal, vertical
}

// RotatedBounds returns the size of the axis-aligned box enclosing a w×h image
// after rotating it by degrees and scaling it by scale.
func RotatedBounds(w, h int, degrees, scale float64) (int, int) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	fw, fh := float64(w)*scale, float64(h)*scale
	return int(math.Ceil(fw*cos + fh*sin - 1e-9)), int(math.Ceil(fw*sin + fh*cos - 1e-9))
}
