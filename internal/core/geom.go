// Package core provides fundamental types and utilities for the runner engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is an integer screen-space coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rectangle is an axis-aligned box anchored at its top-left corner.
type Rectangle struct {
	Origin Point
	W, H   int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rectangle {
	return Rectangle{Origin: Point{X: x, Y: y}, W: w, H: h}
}

// RectFromCorners builds the rectangle spanning two inclusive corners.
func RectFromCorners(topLeft, bottomRight Point) Rectangle {
	return Rectangle{
		Origin: topLeft,
		W:      bottomRight.X - topLeft.X + 1,
		H:      bottomRight.Y - topLeft.Y + 1,
	}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// BottomRight returns the inclusive bottom-right corner (origin + size - 1).
// The second result is false for empty rectangles, which have no such corner.
func (r Rectangle) BottomRight() (Point, bool) {
	if r.Empty() {
		return Point{}, false
	}
	return Point{X: r.Origin.X + r.W - 1, Y: r.Origin.Y + r.H - 1}, true
}

// Overlaps reports whether two rectangles intersect.
// Corners are inclusive and comparisons are strict, so boxes that only share
// a boundary line do not overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	br1, ok1 := r.BottomRight()
	br2, ok2 := other.BottomRight()
	if !ok1 || !ok2 {
		return false
	}

	xOverlap := r.Origin.X < br2.X && br1.X > other.Origin.X
	yOverlap := r.Origin.Y < br2.Y && br1.Y > other.Origin.Y
	return xOverlap && yOverlap
}

// Contains returns true if the point is inside this rectangle.
func (r Rectangle) Contains(p Point) bool {
	br, ok := r.BottomRight()
	if !ok {
		return false
	}
	return p.X >= r.Origin.X && p.X <= br.X && p.Y >= r.Origin.Y && p.Y <= br.Y
}

// BoundingBox returns r itself, so a bare rectangle satisfies Bounded.
func (r Rectangle) BoundingBox() Rectangle {
	return r
}

// Translate returns the rectangle moved by d.
func (r Rectangle) Translate(d Point) Rectangle {
	r.Origin = r.Origin.Add(d)
	return r
}

func (r Rectangle) String() string {
	br, ok := r.BottomRight()
	if !ok {
		return fmt.Sprintf("{%s empty}", r.Origin)
	}
	return fmt.Sprintf("{%s-%s}", r.Origin, br)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
