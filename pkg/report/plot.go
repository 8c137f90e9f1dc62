package report

import (
	"errors"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotFit saves an actual-vs-predicted scatter with the identity line. The
// image format follows the file extension (png, svg, pdf, ...).
func PlotFit(path, target string, actual, predicted []float64) error {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return errors.New("report: nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Polynomial regression fit"
	p.X.Label.Text = "Actual " + target
	p.Y.Label.Text = "Predicted " + target

	pts := make(plotter.XYs, len(actual))
	for i := range actual {
		pts[i].X = actual[i]
		pts[i].Y = predicted[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	lo := min(floats.Min(actual), floats.Min(predicted))
	hi := max(floats.Max(actual), floats.Max(predicted))
	l, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 255, A: 255}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(l)
	p.Add(plotter.NewGrid())

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
