// Package core provides the fundamental geometry types shared by the board,
// the trajectory engine and the presentation layer.
// It contains no external dependencies to keep the engine pure and testable.
package core

import "math"

// Point is a position in world space. The arena is centered on the origin
// and Y grows upward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp returns the point at fraction t along the segment p -> q.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Bounds is an axis-aligned rectangle in world space.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ContainsOpen reports whether p lies strictly inside the rectangle.
// Points on an edge are outside.
func (b Bounds) ContainsOpen(p Point) bool {
	return p.X > b.MinX && p.X < b.MaxX && p.Y > b.MinY && p.Y < b.MaxY
}

// Contains reports whether p lies inside the rectangle or on its edge.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the center point of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
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
