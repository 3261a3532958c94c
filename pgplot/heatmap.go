// Package pgplot renders a chartab.CharacterTable for visual inspection,
// using gonum's plotting library. It is optional: nothing in chartab or
// symmetrize depends on it.
package pgplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/go-msym/pointgroup/chartab"
)

// tableGrid adapts a CharacterTable's character matrix to plotter.GridXYZ:
// X indexes conjugacy classes, Y indexes irreps (species).
type tableGrid struct {
	ct *chartab.CharacterTable
}

func (g tableGrid) Dims() (c, r int) {
	return len(g.ct.ClassSize), len(g.ct.Species)
}

func (g tableGrid) Z(c, r int) float64 {
	return g.ct.Table[r][c]
}

func (g tableGrid) X(c int) float64 {
	return float64(c)
}

func (g tableGrid) Y(r int) float64 {
	return float64(r)
}

// Heatmap renders ct's character matrix as a heatmap, one column per
// conjugacy class and one row per irrep, using a diverging red-blue
// palette centered on zero.
func Heatmap(ct *chartab.CharacterTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Character table: " + ct.Type.String()
	p.X.Label.Text = "conjugacy class"
	p.Y.Label.Text = "irrep"

	maxAbs := 0.0
	for _, row := range ct.Table {
		for _, x := range row {
			if a := abs(x); a > maxAbs {
				maxAbs = a
			}
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	pal := divergingPalette{max: maxAbs}
	hm := plotter.NewHeatMap(tableGrid{ct: ct}, pal)
	hm.Min, hm.Max = -maxAbs, maxAbs
	p.Add(hm)

	return p, nil
}

// Save renders p to the given path; the image format is inferred from the
// file extension (see vg/draw's registered canvas formats, e.g. ".png").
func Save(p *plot.Plot, w, h vg.Length, path string) error {
	return p.Save(w, h, path)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// divergingPalette interpolates blue (negative) through white (zero) to red
// (positive) in equal steps. The colors do not depend on max; Heatmap scales
// them to ±max by setting the heat map's Min and Max.
type divergingPalette struct {
	max float64
}

func (p divergingPalette) Colors() []color.Color {
	const steps = 41
	colors := make([]color.Color, steps)
	for i := range colors {
		t := float64(i)/float64(steps-1)*2 - 1 // [-1, 1]
		colors[i] = lerpColor(t)
	}
	return colors
}

func lerpColor(t float64) color.Color {
	if t < 0 {
		return mix(color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{B: 255, A: 255}, -t)
	}
	return mix(color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{R: 255, A: 255}, t)
}

func mix(a, b color.RGBA, t float64) color.Color {
	return color.RGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
