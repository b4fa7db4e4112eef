// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders the trillium figures with gonum/plot:
// overlaid histograms, grouped scatter plots and posterior densities.
package chart // import "github.com/aclements/go-trillium/chart"

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-trillium/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultBins is the number of histogram bins used when a Histograms
// caller does not choose one.
const DefaultBins = 10

// A Group is a named set of values, drawn as one histogram.
type Group struct {
	Name   string
	Values []float64
}

// An XYGroup is a named set of points, drawn in one color.
type XYGroup struct {
	Name string
	X, Y []float64
}

// translucent returns the i'th palette color with alpha a.
func translucent(i int, a uint8) color.Color {
	r, g, b, _ := plotutil.Color(i).RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), a}
}

func newPlot(title, xlabel, ylabel string) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	return p, nil
}

// Histograms overlays one histogram per group. Each histogram is
// normalized to unit area so groups of different sizes compare. NaN
// values are ignored and groups with no values are skipped. bins <= 0
// means DefaultBins.
func Histograms(groups []Group, bins int, title, xlabel string) (*plot.Plot, error) {
	if bins <= 0 {
		bins = DefaultBins
	}
	p, err := newPlot(title, xlabel, "density")
	if err != nil {
		return nil, err
	}
	drawn := 0
	for i, g := range groups {
		vs := finite(g.Values)
		if len(vs) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(vs), bins)
		if err != nil {
			return nil, fmt.Errorf("histogram of %s: %w", g.Name, err)
		}
		h.Normalize(1)
		h.FillColor = translucent(i, 0x80)
		h.LineStyle.Color = plotutil.Color(i)
		p.Add(h)
		p.Legend.Add(g.Name, h)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("no values to plot")
	}
	return p, nil
}

// Scatter draws the points of each group in its own color. Points with
// a NaN coordinate are ignored.
func Scatter(groups []XYGroup, title, xlabel, ylabel string) (*plot.Plot, error) {
	p, err := newPlot(title, xlabel, ylabel)
	if err != nil {
		return nil, err
	}
	drawn := 0
	for i, g := range groups {
		if len(g.X) != len(g.Y) {
			return nil, fmt.Errorf("group %s has %d x values and %d y values", g.Name, len(g.X), len(g.Y))
		}
		var xys plotter.XYs
		for j := range g.X {
			if math.IsNaN(g.X[j]) || math.IsNaN(g.Y[j]) {
				continue
			}
			xys = append(xys, plotter.XY{X: g.X[j], Y: g.Y[j]})
		}
		if len(xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter of %s: %w", g.Name, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(g.Name, s)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("no points to plot")
	}
	return p, nil
}

// Posterior draws the kernel density estimate of a posterior sample,
// a vertical line at its mean and a bar under the mass-HDI.
func Posterior(name string, s stats.Sample, mass float64, kde stats.KDE) (*plot.Plot, error) {
	if len(s.Xs) == 0 {
		return nil, fmt.Errorf("empty posterior sample for %s", name)
	}
	p, err := newPlot(name, name, "density")
	if err != nil {
		return nil, err
	}

	xs, ys := kde.From(s).Curve(200)
	curve := make(plotter.XYs, len(xs))
	top := 0.0
	for i := range xs {
		curve[i] = plotter.XY{X: xs[i], Y: ys[i]}
		top = math.Max(top, ys[i])
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = plotutil.Color(0)
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	mean := s.Mean()
	meanLine, err := plotter.NewLine(plotter.XYs{{X: mean, Y: 0}, {X: mean, Y: top}})
	if err != nil {
		return nil, err
	}
	meanLine.LineStyle.Color = plotutil.Color(1)
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(meanLine)
	p.Legend.Add(fmt.Sprintf("mean=%.3g", mean), meanLine)

	lo, hi := s.HDI(mass)
	bar, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return nil, err
	}
	bar.LineStyle.Color = color.Black
	bar.LineStyle.Width = vg.Points(4)
	p.Add(bar)
	p.Legend.Add(fmt.Sprintf("%.0f%% HDI [%.3g, %.3g]", mass*100, lo, hi), bar)
	return p, nil
}

// Save writes p to path in the format named by its extension (png,
// svg, pdf, ...). Zero width or height means 6 or 4 inches.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if width == 0 {
		width = 6 * vg.Inch
	}
	if height == 0 {
		height = 4 * vg.Inch
	}
	return p.Save(width, height, path)
}

func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
