package airfoil_test

import (
	"fmt"
	"strings"

	airfoil "github.com/NimaSam/PyAero"
)

func ExampleParseContour() {
	const data = `# sample profile
0.0 0.0
0.5 0.05
1.0 0.0`

	pts, err := airfoil.ParseContour(strings.NewReader(data), "#")
	if err != nil {
		fmt.Println(err)
		return
	}
	chord, off, err := airfoil.NormalizeChord(pts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(pts), chord, off.MinY, off.MaxY)
	// Output: 3 1 0 0.05
}

func ExampleCatmullRomFitter() {
	pts := []airfoil.Point{
		airfoil.Pt(0, 0),
		airfoil.Pt(0.5, 0.05),
		airfoil.Pt(1, 0),
	}
	sd, err := airfoil.CatmullRomFitter{SamplesPerSegment: 4}.FitContour(pts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(sd), sd[0], sd[len(sd)-1])
	// Output: 9 (0, 0) (1, 0)
}
