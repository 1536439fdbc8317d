// Package geom provides the geometric primitives shared by collision,
// hit-testing, and the renderer: axis-aligned rectangles, 2D vectors,
// and the four cardinal directions.
package geom

import "math"

// Rect is an axis-aligned box in scene pixel units. The origin is the
// top-left corner, Y increases downward.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from a position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether r and other overlap. The comparison uses open
// intervals: rectangles that merely touch along an edge do not overlap,
// so a player flush against a wall is not colliding with it.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the top/left edges are inside, points on the bottom/right
// edges are outside, so adjacent rectangles never both claim a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Expand returns the rectangle grown by margin on all four sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X: r.X - margin,
		Y: r.Y - margin,
		W: r.W + 2*margin,
		H: r.H + 2*margin,
	}
}

// Vec2 is a 2D vector used for positions, offsets, and velocities.
type Vec2 struct {
	X, Y float64
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vec2) DistanceTo(other Vec2) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

// Dir is one of the four cardinal directions.
type Dir uint8

// Cardinal directions. The zero value is DirDown so a freshly created
// character faces the camera.
const (
	DirDown Dir = iota
	DirUp
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) grid offset for one step in this direction.
// Up decreases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// ClampF restricts a float64 value to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
