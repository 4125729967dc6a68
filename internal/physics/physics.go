// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Rect is an axis-aligned bounding box with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Overlaps reports whether two boxes intersect. Boxes that only touch on an
// edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Centered builds a box of the given size centred on (cx, cy).
func Centered(cx, cy, width, height float64) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
