package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	airfoil "github.com/NimaSam/PyAero"
)

func buildScene(t *testing.T) (*airfoil.Airfoil, *airfoil.MemScene) {
	t.Helper()
	const data = `# test profile
1.0 0.0
0.5 0.08
0.0 0.0
0.5 -0.08
1.0 0.0
`
	path := filepath.Join(t.TempDir(), "profile.dat")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	a := airfoil.New("test")
	require.NoError(t, a.ReadContour(path, "#"))
	scene := airfoil.NewMemScene()
	require.NoError(t, a.MakeAirfoil(scene))
	return a, scene
}

// countForeground returns the number of pixels that differ from the
// renderer background.
func countForeground(img image.Image, bg [4]uint32) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, al := img.At(x, y).RGBA()
			if [4]uint32{r, g, bl, al} != bg {
				n++
			}
		}
	}
	return n
}

func background(t *testing.T, r *Renderer) [4]uint32 {
	t.Helper()
	dc, err := r.Render(airfoil.NewMemScene())
	require.NoError(t, err)
	cr, cg, cb, ca := dc.Image().At(0, 0).RGBA()
	return [4]uint32{cr, cg, cb, ca}
}

func TestRender(t *testing.T) {
	_, scene := buildScene(t)
	r := New(240, 160)
	dc, err := r.Render(scene)
	require.NoError(t, err)
	require.Equal(t, 240, dc.Width())
	require.Equal(t, 160, dc.Height())

	fg := countForeground(dc.Image(), background(t, r))
	require.Greater(t, fg, 0, "rendered airfoil left no marks on the canvas")
}

func TestRenderEmptyScene(t *testing.T) {
	r := New(64, 64)
	dc, err := r.Render(airfoil.NewMemScene())
	require.NoError(t, err)
	fg := countForeground(dc.Image(), background(t, r))
	require.Zero(t, fg, "empty scene produced foreground pixels")
}

func TestRenderHiddenSpline(t *testing.T) {
	a, scene := buildScene(t)
	require.NoError(t, a.FitSpline(airfoil.CatmullRomFitter{}))
	require.NoError(t, a.MakeContourSpline(scene))

	r := New(240, 160)
	dc, err := r.Render(scene)
	require.NoError(t, err)
	fg := countForeground(dc.Image(), background(t, r))
	require.Greater(t, fg, 0)
}

func TestWritePNG(t *testing.T) {
	_, scene := buildScene(t)
	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, New(240, 160).WritePNG(scene, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestViewportFit(t *testing.T) {
	r := New(200, 100)
	r.Margin = 10
	vp := r.fit(airfoil.Rect{X0: 0, Y0: -0.5, X1: 1, Y1: 0.5})

	// The unit-wide, unit-high box must fit the 80 px of usable height.
	require.InDelta(t, 80.0, vp.scale, 1e-9)

	// y is flipped: the top of the box maps above its bottom.
	_, top := vp.apply(airfoil.Pt(0.5, 0.5))
	_, bottom := vp.apply(airfoil.Pt(0.5, -0.5))
	require.Less(t, top, bottom)

	// The box center lands on the viewport center.
	cx, cy := vp.apply(airfoil.Pt(0.5, 0))
	require.InDelta(t, 100.0, cx, 1e-9)
	require.InDelta(t, 50.0, cy, 1e-9)
}

func TestViewportDegenerateBounds(t *testing.T) {
	r := New(100, 100)
	vp := r.fit(airfoil.Rect{})
	require.Equal(t, 1.0, vp.scale)
}
