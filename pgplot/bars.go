package pgplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/go-msym/pointgroup/chartab"
)

// DimensionBars renders a bar chart of each irrep's dimension, one bar per
// species, labeled on the X axis with its Mulliken label.
func DimensionBars(ct *chartab.CharacterTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Irrep dimensions: " + ct.Type.String()
	p.Y.Label.Text = "dimension"

	values := make(plotter.Values, len(ct.Species))
	labels := make([]string, len(ct.Species))
	for i, s := range ct.Species {
		values[i] = float64(s.Dim)
		labels[i] = s.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p, nil
}
