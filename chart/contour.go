// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ContourResolution is the number of grid cells per axis for ZeroContours.
const ContourResolution = 200

// Curve is an implicit curve g(x, y) = 0 with a legend label.
type Curve struct {
	Label string
	G     func(x, y float64) float64
}

// Window is the rectangular plotting area.
type Window struct {
	XMin, XMax, YMin, YMax float64
}

// DefaultWindow is the [-2, 2]² square used for the predefined systems.
var DefaultWindow = Window{XMin: -2, XMax: 2, YMin: -2, YMax: 2}

// grid samples g on a regular lattice; it implements plotter.GridXYZ.
type grid struct {
	xs, ys []float64
	z      [][]float64 // z[row][col]
}

func newGrid(g func(x, y float64) float64, w Window, n int) *grid {
	gr := &grid{xs: make([]float64, n+1), ys: make([]float64, n+1), z: make([][]float64, n+1)}
	dx := (w.XMax - w.XMin) / float64(n)
	dy := (w.YMax - w.YMin) / float64(n)
	for i := 0; i <= n; i++ {
		gr.xs[i] = w.XMin + float64(i)*dx
		gr.ys[i] = w.YMin + float64(i)*dy
	}
	for r := range gr.z {
		gr.z[r] = make([]float64, n+1)
		for c := range gr.z[r] {
			gr.z[r][c] = g(gr.xs[c], gr.ys[r])
		}
	}

	return gr
}

func (g *grid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g *grid) Z(c, r int) float64 { return g.z[r][c] }
func (g *grid) X(c int) float64    { return g.xs[c] }
func (g *grid) Y(r int) float64    { return g.ys[r] }

// solid is a one-color palette.
type solid struct{ c color.Color }

var _ palette.Palette = solid{}

func (s solid) Colors() []color.Color { return []color.Color{s.c} }

// ZeroContours draws the zero level set of every curve in the window, one
// color per curve, optionally marking a point (e.g. a computed solution).
func ZeroContours(path, title string, curves []Curve, w Window, mark []float64, size Size) error {
	if len(curves) == 0 {
		return fmt.Errorf("chart: contours %q: %w", title, ErrNoData)
	}
	if !(w.XMin < w.XMax) || !(w.YMin < w.YMax) {
		return fmt.Errorf("chart: contours %q: %w", title, ErrBadRange)
	}

	p := newPlot(title)
	for i, cv := range curves {
		col := plotutil.Color(i)
		ct := plotter.NewContour(newGrid(cv.G, w, ContourResolution), []float64{0}, solid{c: col})
		ct.LineStyles = []draw.LineStyle{{Color: col, Width: vg.Points(1.5)}}
		p.Add(ct)
		p.Legend.Add(cv.Label, &plotter.Line{LineStyle: ct.LineStyles[0]})
	}
	if len(mark) == 2 {
		if s, err := scatter(plotter.XYs{{X: mark[0], Y: mark[1]}}, color.Black); err == nil {
			p.Add(s)
			p.Legend.Add("solution", s)
		}
	}
	p.X.Min, p.X.Max = w.XMin, w.XMax
	p.Y.Min, p.Y.Max = w.YMin, w.YMax

	return save(p, size, path)
}
