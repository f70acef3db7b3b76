// Package airfoil models 2D airfoil profiles for an interactive design tool.
//
// An [Airfoil] is loaded from a plain-text coordinate file (one x/y pair per
// line, comment lines filtered by a caller-supplied token), normalized to
// unit chord length, and turned into renderable geometry: the contour
// polygon, the chord line, one circular marker per contour point, and
// optionally a refined spline contour with its own marker set.
//
// # Lifecycle
//
// An airfoil moves through four states:
//
//	Empty → Loaded → GeometryBuilt → SplineAugmented
//
// [Airfoil.ReadContour] performs the Empty → Loaded transition; on failure
// the previous state is left untouched. [Airfoil.MakeAirfoil] derives the
// raw-contour geometry bundle and installs it into a [Scene].
// [Airfoil.MakeContourSpline] installs the spline contour once spline data
// is available, either via [Airfoil.FitSpline] or supplied externally with
// [Airfoil.SetSplineData].
//
// Rebuilding is idempotent: previously installed scene items are released
// before replacements are installed.
//
// # Scenes
//
// The display side is decoupled behind the [Scene] interface. [MemScene] is
// a self-contained retained scene useful for tests and headless tooling; the
// render subpackage rasterizes a MemScene with github.com/gogpu/gg.
//
// # Coordinates
//
// Contour coordinates are y-up with x running from leading to trailing edge
// after normalization: min(x) == 0 and max(x) == 1. The y values are scaled
// by the same chord divisor and are not re-centered.
//
// Package airfoil produces no log output by default. Call [SetLogger] to
// receive loader diagnostics.
package airfoil
