// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrBadRange indicates lo >= hi or non-finite bounds.
	ErrBadRange = errors.New("chart: range must satisfy lo < hi")

	// ErrNoData indicates nothing drawable (no finite samples or no points).
	ErrNoData = errors.New("chart: nothing to plot")
)

// Size is the image size in inches.
type Size struct {
	Width  float64
	Height float64
}

// DefaultSize is used when a zero Size is passed.
var DefaultSize = Size{Width: 8, Height: 5}

// Samples is the number of points used to draw continuous curves.
const Samples = 500

func (s Size) lengths() (vg.Length, vg.Length) {
	if s.Width <= 0 || s.Height <= 0 {
		s = DefaultSize
	}

	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	return p
}

func save(p *plot.Plot, size Size, path string) error {
	w, h := size.lengths()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}

// sample evaluates f on Samples+1 points of [lo, hi], dropping non-finite values.
func sample(f func(float64) float64, lo, hi float64) (plotter.XYs, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		return nil, ErrBadRange
	}
	pts := make(plotter.XYs, 0, Samples+1)
	step := (hi - lo) / Samples
	for i := 0; i <= Samples; i++ {
		x := lo + float64(i)*step
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}

	return pts, nil
}

func points(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return nil, ErrNoData
	}
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	if len(pts) == 0 {
		return nil, ErrNoData
	}

	return pts, nil
}

func line(pts plotter.XYs, i int) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle = draw.LineStyle{Color: plotutil.Color(i), Width: vg.Points(1.5)}

	return l, nil
}

func scatter(pts plotter.XYs, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Shape = draw.CircleGlyph{}

	return s, nil
}

// Function draws y = f(x) on [lo, hi].
func Function(path, title string, f func(float64) float64, lo, hi float64, size Size) error {
	pts, err := sample(f, lo, hi)
	if err != nil {
		return fmt.Errorf("chart: function %q: %w", title, err)
	}
	p := newPlot(title)
	l, err := line(pts, 0)
	if err != nil {
		return fmt.Errorf("chart: function %q: %w", title, err)
	}
	p.Add(l)

	return save(p, size, path)
}

// Interpolant draws the curve eval over the node span together with the
// interpolation nodes. When mark is finite, the point (mark, eval(mark)) is
// highlighted.
func Interpolant(path, title string, eval func(float64) float64, xs, ys []float64, mark float64, size Size) error {
	nodes, err := points(xs, ys)
	if err != nil {
		return fmt.Errorf("chart: interpolant %q: %w", title, err)
	}
	lo, hi := xs[0], xs[len(xs)-1]
	curve, err := sample(eval, lo, hi)
	if err != nil {
		return fmt.Errorf("chart: interpolant %q: %w", title, err)
	}

	p := newPlot(title)
	l, err := line(curve, 0)
	if err != nil {
		return err
	}
	s, err := scatter(nodes, plotutil.Color(1))
	if err != nil {
		return err
	}
	p.Add(l, s)
	p.Legend.Add(title, l)
	p.Legend.Add("nodes", s)

	if !math.IsNaN(mark) && !math.IsInf(mark, 0) {
		if m, err := scatter(plotter.XYs{{X: mark, Y: eval(mark)}}, plotutil.Color(2)); err == nil {
			m.GlyphStyle.Shape = draw.CrossGlyph{}
			m.GlyphStyle.Radius = vg.Points(5)
			p.Add(m)
			p.Legend.Add(fmt.Sprintf("P(%g)", mark), m)
		}
	}

	return save(p, size, path)
}

// Trajectory draws a numeric ODE solution as points and, when exact is
// non-nil, the exact solution as a curve over the same span.
func Trajectory(path, title string, xs, ys []float64, exact func(float64) float64, size Size) error {
	pts, err := points(xs, ys)
	if err != nil {
		return fmt.Errorf("chart: trajectory %q: %w", title, err)
	}

	p := newPlot(title)
	s, err := scatter(pts, plotutil.Color(0))
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)
	p.Legend.Add("numeric", s)

	if exact != nil && len(xs) > 1 {
		curve, err := sample(exact, xs[0], xs[len(xs)-1])
		if err == nil {
			l, err := line(curve, 1)
			if err != nil {
				return err
			}
			p.Add(l)
			p.Legend.Add("exact", l)
		}
	}

	return save(p, size, path)
}
