package airfoil

import "fmt"

// SplineData is a refined coordinate sequence produced by a contour fitter.
// It follows the same shape contract as raw contour coordinates.
type SplineData []Point

// ContourFitter produces a smoothed, refined contour from normalized
// coordinates. The airfoil core treats fitters as external collaborators;
// [CatmullRomFitter] is the implementation shipped with this package.
type ContourFitter interface {
	FitContour(pts []Point) (SplineData, error)
}

// DefaultSamplesPerSegment is the refinement used by a zero-valued
// [CatmullRomFitter].
const DefaultSamplesPerSegment = 10

// CatmullRomFitter interpolates a Catmull-Rom spline through every contour
// point. Each segment is converted to the equivalent cubic Bézier and
// sampled uniformly in parameter space, so the fitted contour passes
// through all original points.
type CatmullRomFitter struct {
	// SamplesPerSegment is the number of points emitted per input segment.
	// Values below 1 fall back to DefaultSamplesPerSegment.
	SamplesPerSegment int
}

var _ ContourFitter = CatmullRomFitter{}

// FitContour implements [ContourFitter]. It requires at least three points.
func (f CatmullRomFitter) FitContour(pts []Point) (SplineData, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("%w: spline fit needs at least 3 points, got %d",
			ErrInvalidContour, len(pts))
	}
	samples := f.SamplesPerSegment
	if samples < 1 {
		samples = DefaultSamplesPerSegment
	}

	out := make(SplineData, 0, (len(pts)-1)*samples+1)
	for i := 0; i < len(pts)-1; i++ {
		// Endpoint segments reuse the boundary point as their outer
		// neighbor, which clamps the tangent there.
		p0 := pts[max(i-1, 0)]
		p3 := pts[min(i+2, len(pts)-1)]
		seg := catmullRomSegment(p0, pts[i], pts[i+1], p3)
		for k := range samples {
			out = append(out, seg.eval(float64(k)/float64(samples)))
		}
	}
	out = append(out, pts[len(pts)-1])
	return out, nil
}

// cubicBez is one cubic Bézier segment of a fitted contour.
type cubicBez struct {
	p0, p1, p2, p3 Point
}

// eval evaluates the segment at t ∈ [0, 1] by de Casteljau subdivision.
func (c cubicBez) eval(t float64) Point {
	ab := c.p0.Lerp(c.p1, t)
	bc := c.p1.Lerp(c.p2, t)
	cd := c.p2.Lerp(c.p3, t)
	abbc := ab.Lerp(bc, t)
	bccd := bc.Lerp(cd, t)
	return abbc.Lerp(bccd, t)
}

// catmullRomSegment converts the Catmull-Rom segment p1→p2 with outer
// neighbors p0 and p3 into its cubic Bézier form.
func catmullRomSegment(p0, p1, p2, p3 Point) cubicBez {
	return cubicBez{
		p0: p1,
		p1: Pt(p1.X+(p2.X-p0.X)/6, p1.Y+(p2.Y-p0.Y)/6),
		p2: Pt(p2.X-(p3.X-p1.X)/6, p2.Y-(p3.Y-p1.Y)/6),
		p3: p2,
	}
}
