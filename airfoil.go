package airfoil

import "fmt"

// State is the lifecycle state of an [Airfoil].
type State int

const (
	// StateEmpty means no contour has been loaded yet.
	StateEmpty State = iota
	// StateLoaded means normalized coordinates are available.
	StateLoaded
	// StateGeometryBuilt means the raw-contour geometry bundle is installed
	// in a scene.
	StateGeometryBuilt
	// StateSplineAugmented means the spline contour is installed as well.
	StateSplineAugmented
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoaded:
		return "Loaded"
	case StateGeometryBuilt:
		return "GeometryBuilt"
	case StateSplineAugmented:
		return "SplineAugmented"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Airfoil is a single 2D profile: its normalized coordinates, chord and
// offset, optional spline data, and the derived geometry it has installed
// into a scene. Each Airfoil owns its buffers exclusively; coordinates are
// copied in and out, never aliased.
type Airfoil struct {
	// Name is the profile name, without path.
	Name string
	// Styles is the presentation palette used when geometry is built.
	// Replace it before MakeAirfoil to restyle.
	Styles StyleSet

	points []Point
	chord  float64
	offset Offset
	spline SplineData
	state  State

	contour       *ContourGeometry
	chordLine     *ChordLine
	markers       MarkerSet
	splineContour *ContourGeometry
	splineMarkers MarkerSet

	contourItem       ItemID
	chordItem         ItemID
	markerGroup       GroupID
	splineItem        ItemID
	splineMarkerGroup GroupID
}

// New returns an empty airfoil with the default styles.
func New(name string) *Airfoil {
	return &Airfoil{
		Name:   name,
		Styles: DefaultStyles(),
	}
}

// State returns the current lifecycle state.
func (a *Airfoil) State() State { return a.state }

// Points returns a copy of the normalized coordinates.
func (a *Airfoil) Points() []Point { return clonePoints(a.points) }

// ChordLength returns the chord extent max(x) − min(x) in the raw units of
// the loaded file.
func (a *Airfoil) ChordLength() float64 { return a.chord }

// Offset returns the raw y extents captured at load time.
func (a *Airfoil) Offset() Offset { return a.offset }

// SplineData returns a copy of the current spline coordinates, or nil when
// none are set.
func (a *Airfoil) SplineData() SplineData {
	if a.spline == nil {
		return nil
	}
	return SplineData(clonePoints(a.spline))
}

// Bounds returns the bounding box of the normalized coordinates.
func (a *Airfoil) Bounds() Rect { return BoundsOf(a.points) }

// ReadContour loads the coordinate file at path, filtering lines that
// contain comment, and normalizes the contour to unit chord. On any
// failure the airfoil keeps its previous coordinates, chord, offset and
// state untouched.
//
// Reloading invalidates previously fitted spline data.
func (a *Airfoil) ReadContour(path, comment string) error {
	pts, err := ReadContour(path, comment)
	if err != nil {
		return err
	}
	chord, off, err := NormalizeChord(pts)
	if err != nil {
		Logger().Error("unable to normalize contour", "path", path, "err", err)
		return fmt.Errorf("read contour %s: %w", path, err)
	}

	a.points = pts
	a.chord = chord
	a.offset = off
	a.spline = nil
	a.state = StateLoaded
	return nil
}

// MakeAirfoil derives the raw-contour geometry bundle — contour polygon,
// chord line and polygon markers — and installs it into scene. Geometry
// previously installed by this airfoil is released first, so repeated calls
// rebuild in place instead of accumulating scene items.
func (a *Airfoil) MakeAirfoil(scene Scene) error {
	if a.state < StateLoaded {
		return ErrNotLoaded
	}
	a.releaseRaw(scene)
	a.releaseSpline(scene)

	a.contour = MakeContourPolygon(a.points, a.Styles.Contour)
	a.chordLine = MakeChord(a.points, a.Styles.Chord)
	a.markers = MakeMarkers(a.points, a.Styles.MarkerRadius, a.Styles.Marker)

	a.contourItem = scene.AddItem(a.contour)
	a.chordItem = scene.AddItem(a.chordLine)
	a.markerGroup = scene.CreateItemGroup(a.markers.Renderables())

	a.state = StateGeometryBuilt
	return nil
}

// SetSplineData installs externally produced spline coordinates. The data
// is copied.
func (a *Airfoil) SetSplineData(sd SplineData) {
	a.spline = SplineData(clonePoints(sd))
}

// FitSpline runs fitter over the normalized coordinates and stores the
// refined contour for [Airfoil.MakeContourSpline].
func (a *Airfoil) FitSpline(fitter ContourFitter) error {
	if a.state < StateLoaded {
		return ErrNotLoaded
	}
	sd, err := fitter.FitContour(a.points)
	if err != nil {
		return fmt.Errorf("fit spline for %s: %w", a.Name, err)
	}
	a.spline = sd
	return nil
}

// MakeContourSpline builds the spline contour and its markers from the
// current spline data and installs them into scene, then applies the
// standard presentation adjustments: the raw marker group moves to z 100
// with the chord just below at z 99, and the raw contour and its markers
// are hidden in favor of the spline.
//
// Requires spline data ([Airfoil.FitSpline] or [Airfoil.SetSplineData]) and
// a previous [Airfoil.MakeAirfoil] on the same scene.
func (a *Airfoil) MakeContourSpline(scene Scene) error {
	if a.state < StateGeometryBuilt {
		return ErrNotLoaded
	}
	if len(a.spline) == 0 {
		return ErrNoSplineData
	}
	a.releaseSpline(scene)

	a.splineContour = MakeContourPolygon(a.spline, a.Styles.Spline)
	a.splineMarkers = MakeMarkers(a.spline, a.Styles.SplineMarkerRadius, a.Styles.SplineMarker)

	a.splineItem = scene.AddItem(a.splineContour)
	a.splineMarkerGroup = scene.CreateItemGroup(a.splineMarkers.Renderables())

	a.applySplinePresentation(scene)
	a.state = StateSplineAugmented
	return nil
}

// applySplinePresentation replays the display-side adjustments that follow
// a spline build. This is deliberately separate from geometry construction:
// the builders stay pure and the scene commands are issued explicitly here.
func (a *Airfoil) applySplinePresentation(scene Scene) {
	scene.SetGroupZ(a.markerGroup, 100)
	scene.SetZ(a.chordItem, 99)
	scene.SetGroupVisible(a.markerGroup, false)
	scene.SetVisible(a.contourItem, false)
}

func (a *Airfoil) releaseRaw(scene Scene) {
	if a.contourItem != "" {
		scene.RemoveItem(a.contourItem)
		a.contourItem = ""
	}
	if a.chordItem != "" {
		scene.RemoveItem(a.chordItem)
		a.chordItem = ""
	}
	if a.markerGroup != "" {
		scene.RemoveGroup(a.markerGroup)
		a.markerGroup = ""
	}
	a.contour = nil
	a.chordLine = nil
	a.markers = nil
}

func (a *Airfoil) releaseSpline(scene Scene) {
	if a.splineItem != "" {
		scene.RemoveItem(a.splineItem)
		a.splineItem = ""
	}
	if a.splineMarkerGroup != "" {
		scene.RemoveGroup(a.splineMarkerGroup)
		a.splineMarkerGroup = ""
	}
	a.splineContour = nil
	a.splineMarkers = nil
}
