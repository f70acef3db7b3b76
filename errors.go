// Package-level sentinel errors. Loader and normalization failures are
// reported through these and matched with errors.Is; callers never see a
// panic for malformed input.

package airfoil

import "errors"

var (
	// ErrInvalidContour is returned when a retained data line cannot be
	// parsed into two floating-point coordinates.
	ErrInvalidContour = errors.New("airfoil: invalid contour data")

	// ErrEmptyContour is returned when no data lines remain after comment
	// filtering.
	ErrEmptyContour = errors.New("airfoil: contour has no coordinates")

	// ErrDegenerateChord is returned when all x values coincide, making the
	// chord extent zero and unit-chord normalization impossible.
	ErrDegenerateChord = errors.New("airfoil: degenerate contour, zero chord extent")

	// ErrNotLoaded is returned by geometry operations invoked before a
	// contour has been loaded successfully.
	ErrNotLoaded = errors.New("airfoil: no contour loaded")

	// ErrNoSplineData is returned by MakeContourSpline when no spline data
	// has been fitted or supplied.
	ErrNoSplineData = errors.New("airfoil: no spline data")
)
