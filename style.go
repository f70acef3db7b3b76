package airfoil

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Presentation metadata. Styles are attached to geometry as opaque data and
// never influence the geometry itself; renderers interpret them.

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA returns the color with the given channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Floats returns the channels scaled to the range [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// Pen describes how an outline is drawn.
type Pen struct {
	Color Color `yaml:"color"`
	// Width is in contour units, or in device pixels when Cosmetic is set.
	Width  float64 `yaml:"width"`
	Dashed bool    `yaml:"dashed"`
	// Cosmetic pens keep their width regardless of view zoom.
	Cosmetic bool `yaml:"cosmetic"`
}

// Brush describes how an interior is filled. Fill false means no fill.
type Brush struct {
	Color Color `yaml:"color"`
	Fill  bool  `yaml:"fill"`
}

// Style bundles the pen and brush for one renderable.
type Style struct {
	Pen   Pen   `yaml:"pen"`
	Brush Brush `yaml:"brush"`
}

// StyleSet carries the presentation styles of a single airfoil.
type StyleSet struct {
	Contour      Style `yaml:"contour"`
	Chord        Style `yaml:"chord"`
	Marker       Style `yaml:"marker"`
	Spline       Style `yaml:"spline"`
	SplineMarker Style `yaml:"spline_marker"`

	// Marker radii are in normalized chord units.
	MarkerRadius       float64 `yaml:"marker_radius"`
	SplineMarkerRadius float64 `yaml:"spline_marker_radius"`
}

// DefaultStyles returns the tool's standard palette.
func DefaultStyles() StyleSet {
	return StyleSet{
		Contour: Style{
			Pen:   Pen{Color: RGBA(80, 150, 220, 255), Width: 2.2, Cosmetic: true},
			Brush: Brush{Color: RGBA(0x7c, 0x86, 0x96, 255), Fill: true},
		},
		Chord: Style{
			Pen: Pen{Color: RGBA(70, 70, 70, 255), Width: 0.02, Dashed: true, Cosmetic: true},
		},
		Marker: Style{
			Pen:   Pen{Color: RGBA(60, 60, 80, 255), Width: 0.08, Cosmetic: true},
			Brush: Brush{Color: RGBA(217, 63, 122, 150), Fill: true},
		},
		Spline: Style{
			Pen:   Pen{Color: RGBA(80, 80, 220, 255), Width: 3.5, Cosmetic: true},
			Brush: Brush{Color: RGBA(0x7c, 0x86, 0x96, 255), Fill: false},
		},
		SplineMarker: Style{
			Pen:   Pen{Color: RGBA(60, 60, 80, 255), Width: 0.08, Cosmetic: true},
			Brush: Brush{Color: RGBA(180, 180, 50, 230), Fill: true},
		},
		MarkerRadius:       0.035,
		SplineMarkerRadius: 0.03,
	}
}

// LoadStyles reads a YAML style sheet from path, overlaying it onto
// [DefaultStyles]. Fields absent from the sheet keep their default values.
// On error the defaults are returned together with the error.
func LoadStyles(path string) (StyleSet, error) {
	set := DefaultStyles()
	buf, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("load styles: %w", err)
	}
	if err := yaml.Unmarshal(buf, &set); err != nil {
		return set, fmt.Errorf("load styles %s: %w", path, err)
	}
	return set, nil
}
