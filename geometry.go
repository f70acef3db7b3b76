package airfoil

// Line is a line segment. The chord of an airfoil is a Line.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the midpoint of the line.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Bounds() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Circle is the shape of a contour point marker.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Bounds() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}

// ContourGeometry is an ordered polygon derived from contour coordinates,
// together with its presentation style. It owns its point slice; rebuilding
// replaces the whole object rather than mutating it.
type ContourGeometry struct {
	Points []Point
	Style  Style
}

func (g *ContourGeometry) Bounds() Rect {
	return BoundsOf(g.Points)
}

// ChordLine is the styled chord segment of a contour.
type ChordLine struct {
	Line  Line
	Style Style
}

func (c *ChordLine) Bounds() Rect {
	return c.Line.Bounds()
}

// Marker is one circular marker centered on a contour point.
type Marker struct {
	Circle Circle
	Style  Style
}

func (m Marker) Bounds() Rect {
	return m.Circle.Bounds()
}

// MarkerSet is the parallel marker structure of a contour: one marker per
// coordinate point, grouped in the scene for joint visibility and z-order
// control.
type MarkerSet []Marker

// Renderables returns the markers as individual scene renderables.
func (ms MarkerSet) Renderables() []Renderable {
	rs := make([]Renderable, len(ms))
	for i := range ms {
		rs[i] = ms[i]
	}
	return rs
}

// MakeContourPolygon builds a polygon from the coordinate sequence in
// encounter order. The coordinates are copied, so later mutation of pts
// cannot corrupt the geometry.
func MakeContourPolygon(pts []Point, style Style) *ContourGeometry {
	return &ContourGeometry{
		Points: clonePoints(pts),
		Style:  style,
	}
}

// MakeChord builds the segment connecting the point with minimum x to the
// point with maximum x. Duplicate extremal x values resolve to the first
// occurrence. pts must be non-empty.
func MakeChord(pts []Point, style Style) *ChordLine {
	lo := argminX(pts)
	hi := argmaxX(pts)
	return &ChordLine{
		Line:  Line{P0: pts[lo], P1: pts[hi]},
		Style: style,
	}
}

// MakeMarkers builds one circular marker of the given radius per coordinate
// point.
func MakeMarkers(pts []Point, radius float64, style Style) MarkerSet {
	ms := make(MarkerSet, len(pts))
	for i, pt := range pts {
		ms[i] = Marker{
			Circle: Circle{Center: pt, Radius: radius},
			Style:  style,
		}
	}
	return ms
}
