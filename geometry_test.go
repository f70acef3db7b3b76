package airfoil

import "testing"

func TestMakeContourPolygonCopies(t *testing.T) {
	src := []Point{Pt(0, 0), Pt(0.5, 0.05), Pt(1, 0)}
	poly := MakeContourPolygon(src, Style{})
	src[1] = Pt(9, 9)
	diff(t, []Point{Pt(0, 0), Pt(0.5, 0.05), Pt(1, 0)}, poly.Points)
}

func TestMakeChord(t *testing.T) {
	pts := []Point{Pt(0.2, 0.1), Pt(1, 0), Pt(0, 0.02), Pt(0.7, -0.04)}
	chord := MakeChord(pts, Style{})
	diff(t, Line{P0: Pt(0, 0.02), P1: Pt(1, 0)}, chord.Line)
}

func TestMakeChordTieBreak(t *testing.T) {
	// Duplicate extremal x values resolve to the first occurrence.
	pts := []Point{Pt(1, 7), Pt(0, 0), Pt(0, 5), Pt(1, 9)}
	chord := MakeChord(pts, Style{})
	diff(t, Line{P0: Pt(0, 0), P1: Pt(1, 7)}, chord.Line)
}

func TestMakeMarkers(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0.5, 0.05), Pt(1, 0)}
	ms := MakeMarkers(pts, 0.035, Style{})
	if len(ms) != len(pts) {
		t.Fatalf("got %d markers, want %d", len(ms), len(pts))
	}
	for i, m := range ms {
		if m.Circle.Center != pts[i] {
			t.Errorf("marker %d centered at %v, want %v", i, m.Circle.Center, pts[i])
		}
		if m.Circle.Radius != 0.035 {
			t.Errorf("marker %d has radius %v, want 0.035", i, m.Circle.Radius)
		}
	}
}

func TestLine(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(3, 4)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
	diff(t, Pt(1.5, 2), l.Midpoint())
	diff(t, Rect{0, 0, 3, 4}, l.Bounds())
}

func TestCircleBounds(t *testing.T) {
	c := Circle{Center: Pt(1, 2), Radius: 0.5}
	diff(t, Rect{0.5, 1.5, 1.5, 2.5}, c.Bounds())
}

func TestContourGeometryBounds(t *testing.T) {
	g := MakeContourPolygon([]Point{Pt(0, -0.1), Pt(0.5, 0.3), Pt(1, 0)}, Style{})
	diff(t, Rect{0, -0.1, 1, 0.3}, g.Bounds())
}

func TestRect(t *testing.T) {
	r := NewRectFromPoints(Pt(2, 3), Pt(0, 1))
	diff(t, Rect{0, 1, 2, 3}, r)
	diff(t, Rect{0, 1, 4, 5}, r.Union(Rect{3, 4, 4, 5}))
	diff(t, Rect{-1, 0, 3, 4}, r.Inflate(1))
	diff(t, Pt(1, 2), r.Center())
	if r.Width() != 2 || r.Height() != 2 {
		t.Errorf("got size %v x %v, want 2 x 2", r.Width(), r.Height())
	}
}

func TestBoundsOfEmpty(t *testing.T) {
	diff(t, Rect{}, BoundsOf(nil))
}
