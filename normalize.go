package airfoil

import "fmt"

// Offset records the y extents of a contour in its raw, pre-normalization
// units.
type Offset struct {
	MinY float64
	MaxY float64
}

// NormalizeChord rescales pts in place to unit chord length: x is shifted so
// min(x) becomes 0, then both x and y are divided by the chord extent
// max(x) − min(x). The y values are not re-centered, so the vertical
// placement of the normalized contour is whatever the shared divisor leaves
// it at.
//
// The returned chord and offset are computed from the values before
// normalization.
//
// An empty slice yields [ErrEmptyContour]; a zero chord extent yields
// [ErrDegenerateChord] before any division takes place, so NaN or Inf never
// enter the coordinates.
func NormalizeChord(pts []Point) (chord float64, off Offset, err error) {
	if len(pts) == 0 {
		return 0, Offset{}, ErrEmptyContour
	}
	minX := pts[argminX(pts)].X
	maxX := pts[argmaxX(pts)].X
	chord = maxX - minX
	if chord == 0 {
		return 0, Offset{}, fmt.Errorf("%w: all x values equal %g", ErrDegenerateChord, minX)
	}
	off.MinY, off.MaxY = yExtents(pts)

	inv := 1 / chord
	for i := range pts {
		pts[i].X = (pts[i].X - minX) * inv
		pts[i].Y *= inv
	}
	return chord, off, nil
}
