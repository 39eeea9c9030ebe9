// Package geom holds the axis-aligned shapes used for hit testing.
package geom

// Point is a position on screen. Coordinates may be negative.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned bounding box with its top-left corner at (X, Y).
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y          int
	Width, Height uint
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y int, width, height uint) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + int(r.Width)
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + int(r.Height)
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Collide reports whether two rectangles overlap. Rectangles that only share
// an edge do not collide, and empty rectangles never collide.
func Collide(r1, r2 Rect) bool {
	if r1.Empty() || r2.Empty() {
		return false
	}
	return !(r2.X >= r1.Right() ||
		r2.Right() <= r1.X ||
		r2.Y >= r1.Bottom() ||
		r2.Bottom() <= r1.Y)
}

// CollidePoint reports whether the point lies inside the rectangle.
func CollidePoint(p Point, r Rect) bool {
	return r.Contains(p)
}
