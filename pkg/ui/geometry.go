// Package ui defines the event types and the consumed widget-tree
// contract for the input pipeline, plus the deterministic delivery
// rules: depth-first hit-testing with pointer capture for touch, and
// focus-rooted upward bubbling for keys and encoder deltas.
package ui

// Point is a position in device pixel space.
type Point struct {
	X, Y int
}

// Rect is a screen-space rectangle. Origin is the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
