package airfoil

import (
	"fmt"
	"math"
)

// Point is a point in the airfoil plane, y-up.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// clonePoints returns an owned copy of pts, so stored coordinates can never
// alias a caller's buffer.
func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// argminX returns the index of the point with the smallest x. Ties resolve
// to the first occurrence. Returns -1 for an empty slice.
func argminX(pts []Point) int {
	idx := -1
	for i, pt := range pts {
		if idx == -1 || pt.X < pts[idx].X {
			idx = i
		}
	}
	return idx
}

// argmaxX returns the index of the point with the largest x. Ties resolve
// to the first occurrence. Returns -1 for an empty slice.
func argmaxX(pts []Point) int {
	idx := -1
	for i, pt := range pts {
		if idx == -1 || pt.X > pts[idx].X {
			idx = i
		}
	}
	return idx
}

// yExtents returns the minimum and maximum y over pts.
// pts must be non-empty.
func yExtents(pts []Point) (minY, maxY float64) {
	minY, maxY = pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	return minY, maxY
}
