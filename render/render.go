// Package render rasterizes airfoil scenes with github.com/gogpu/gg.
//
// It is the concrete scene container of the design tool: an
// [airfoil.MemScene] holds the installed geometry, and a [Renderer] turns
// its snapshot into a pixmap or a PNG preview. Contour coordinates are y-up;
// the renderer flips them into raster space and fits the scene bounds into
// the viewport.
package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	airfoil "github.com/NimaSam/PyAero"
)

// Renderer draws scene snapshots at a fixed pixel size.
type Renderer struct {
	// Width and Height are the viewport size in pixels.
	Width  int
	Height int
	// Margin is the border kept around the scene, in pixels.
	Margin float64
	// Background is the clear color.
	Background gg.RGBA
}

// New returns a renderer with a white background and a 20 px margin.
func New(width, height int) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		Margin:     20,
		Background: gg.White,
	}
}

// viewport maps contour coordinates (y-up) to pixels (y-down) with a
// uniform scale.
type viewport struct {
	scale  float64
	tx, ty float64
}

func (v viewport) apply(pt airfoil.Point) (float64, float64) {
	return v.tx + pt.X*v.scale, v.ty - pt.Y*v.scale
}

func (r *Renderer) fit(bounds airfoil.Rect) viewport {
	w := float64(r.Width) - 2*r.Margin
	h := float64(r.Height) - 2*r.Margin
	s := math.Inf(1)
	if bounds.Width() > 0 {
		s = w / bounds.Width()
	}
	if bounds.Height() > 0 {
		s = min(s, h/bounds.Height())
	}
	if math.IsInf(s, 1) {
		s = 1
	}
	ox := (float64(r.Width) - bounds.Width()*s) / 2
	oy := (float64(r.Height) - bounds.Height()*s) / 2
	return viewport{
		scale: s,
		tx:    ox - bounds.X0*s,
		ty:    oy + bounds.Y1*s,
	}
}

// Render draws all visible scene items in paint order and returns the
// drawing context for further inspection or encoding.
func (r *Renderer) Render(scene *airfoil.MemScene) (*gg.Context, error) {
	dc := gg.NewContext(r.Width, r.Height)
	dc.ClearWithColor(r.Background)

	vp := r.fit(scene.Bounds())
	for _, item := range scene.Snapshot() {
		var err error
		switch g := item.Renderable.(type) {
		case *airfoil.ContourGeometry:
			err = r.drawPolygon(dc, vp, g)
		case *airfoil.ChordLine:
			err = r.drawChord(dc, vp, g)
		case airfoil.Marker:
			err = r.drawMarker(dc, vp, g)
		default:
			err = fmt.Errorf("render: unsupported renderable %T", item.Renderable)
		}
		if err != nil {
			return nil, err
		}
	}
	return dc, nil
}

// WritePNG renders the scene and writes it to path.
func (r *Renderer) WritePNG(scene *airfoil.MemScene, path string) error {
	dc, err := r.Render(scene)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) drawPolygon(dc *gg.Context, vp viewport, g *airfoil.ContourGeometry) error {
	if len(g.Points) == 0 {
		return nil
	}
	tracePolygon(dc, vp, g.Points)
	if g.Style.Brush.Fill {
		setColor(dc, g.Style.Brush.Color)
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("render: fill contour: %w", err)
		}
	}
	if err := strokePen(dc, vp, g.Style.Pen); err != nil {
		return fmt.Errorf("render: stroke contour: %w", err)
	}
	return nil
}

func (r *Renderer) drawChord(dc *gg.Context, vp viewport, c *airfoil.ChordLine) error {
	x0, y0 := vp.apply(c.Line.P0)
	x1, y1 := vp.apply(c.Line.P1)
	dc.MoveTo(x0, y0)
	dc.LineTo(x1, y1)
	if err := strokePen(dc, vp, c.Style.Pen); err != nil {
		return fmt.Errorf("render: stroke chord: %w", err)
	}
	return nil
}

func (r *Renderer) drawMarker(dc *gg.Context, vp viewport, m airfoil.Marker) error {
	x, y := vp.apply(m.Circle.Center)
	dc.DrawCircle(x, y, m.Circle.Radius*vp.scale)
	if m.Style.Brush.Fill {
		setColor(dc, m.Style.Brush.Color)
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("render: fill marker: %w", err)
		}
	}
	if err := strokePen(dc, vp, m.Style.Pen); err != nil {
		return fmt.Errorf("render: stroke marker: %w", err)
	}
	return nil
}

func tracePolygon(dc *gg.Context, vp viewport, pts []airfoil.Point) {
	x, y := vp.apply(pts[0])
	dc.MoveTo(x, y)
	for _, pt := range pts[1:] {
		x, y = vp.apply(pt)
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

// strokePen strokes the current path with the given pen. Cosmetic pens keep
// their width in pixels (with a one-pixel floor so hairlines stay visible);
// others scale with the viewport.
func strokePen(dc *gg.Context, vp viewport, p airfoil.Pen) error {
	width := p.Width
	if p.Cosmetic {
		width = max(width, 1)
	} else {
		width *= vp.scale
	}
	setColor(dc, p.Color)
	dc.SetLineWidth(width)
	if p.Dashed {
		dc.SetDash(3*width, 3*width)
	}
	err := dc.Stroke()
	if p.Dashed {
		dc.ClearDash()
	}
	return err
}

func setColor(dc *gg.Context, c airfoil.Color) {
	r, g, b, a := c.Floats()
	dc.SetRGBA(r, g, b, a)
}
