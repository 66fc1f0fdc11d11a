// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws benchmark charts with gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/benchviz/benchplot/benchchart"
	"github.com/benchviz/benchplot/benchproc"
	"github.com/benchviz/benchplot/benchunit"
)

// Default image size.
const (
	Width  = 9 * vg.Inch
	Height = 6 * vg.Inch
)

var (
	darkBackground = color.Gray{0x28}
	darkForeground = color.Gray{0xd0}
)

// Plots returns the plots of the chart of p. Surface charts have one
// plot per surface; other charts have a single plot.
func Plots(p *benchchart.Plotter) ([]*plot.Plot, error) {
	c := p.Chart()
	if c.Empty() {
		return []*plot.Plot{placeholder(p, c.Placeholder)}, nil
	}
	cfgs := p.SeriesConfigs()

	switch c.Kind {
	case benchchart.Line, benchchart.Spline:
		pl := newPlot(p)
		if err := lines(pl, c, cfgs, p.Legend().Visible); err != nil {
			return nil, err
		}
		setValueAxis(&pl.X, c.Axes[benchchart.AxisX], c.XLabels, axisLabels(p, benchchart.AxisX))
		setValueAxis(&pl.Y, c.Axes[benchchart.AxisY], nil, axisLabels(p, benchchart.AxisY))
		hideAxes(pl, c.Axes[benchchart.AxisX], c.Axes[benchchart.AxisY])
		return []*plot.Plot{pl}, nil

	case benchchart.Bar, benchchart.HBar:
		pl := newPlot(p)
		if err := bars(pl, c, cfgs, p.Legend().Visible, axisLabels(p, benchchart.AxisY)); err != nil {
			return nil, err
		}
		x, y := c.Axes[benchchart.AxisX], c.Axes[benchchart.AxisY]
		if c.Kind == benchchart.HBar {
			x, y = y, x
		}
		hideAxes(pl, x, y)
		return []*plot.Plot{pl}, nil

	case benchchart.Box:
		pl := newPlot(p)
		if err := boxes(pl, c, cfgs, p.Legend().Visible, axisLabels(p, benchchart.AxisY)); err != nil {
			return nil, err
		}
		hideAxes(pl, c.Axes[benchchart.AxisX], c.Axes[benchchart.AxisY])
		return []*plot.Plot{pl}, nil

	case benchchart.Surface:
		var plots []*plot.Plot
		for i, s := range c.Series {
			pl := newPlot(p)
			pl.Title.Text = cfgs[i].NewName
			pl.Add(plotter.NewHeatMap(surfaceGrid(s.Rows), palette.Heat(12, 1)))
			setValueAxis(&pl.X, c.Axes[benchchart.AxisX], c.XLabels, axisLabels(p, benchchart.AxisX))
			setValueAxis(&pl.Y, c.Axes[benchchart.AxisZ], c.ZLabels, axisLabels(p, benchchart.AxisZ))
			hideAxes(pl, c.Axes[benchchart.AxisX], c.Axes[benchchart.AxisZ])
			plots = append(plots, pl)
		}
		return plots, nil
	}
	return nil, fmt.Errorf("cannot draw %s charts", c.Kind)
}

// Save draws the chart of p to path. The image format follows the
// extension of path. The plots of charts with several surfaces are
// saved to path with "-1", "-2" and so on inserted before the
// extension.
func Save(p *benchchart.Plotter, path string, width, height vg.Length) error {
	plots, err := Plots(p)
	if err != nil {
		return err
	}
	for i, pl := range plots {
		out := path
		if len(plots) > 1 {
			ext := filepath.Ext(path)
			out = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
		}
		if err := pl.Save(width, height, out); err != nil {
			return fmt.Errorf("saving chart: %w", err)
		}
	}
	return nil
}

// newPlot returns an empty plot styled after the theme and legend of
// p.
func newPlot(p *benchchart.Plotter) *plot.Plot {
	pl := plot.New()
	l := p.Legend()
	pl.Legend.Top = l.Align != benchchart.LegendBottom
	pl.Legend.Left = l.Align == benchchart.LegendLeft
	pl.Legend.TextStyle.Font.Size = vg.Points(float64(l.FontSize))
	pl.Legend.Padding = 1 * vg.Millimeter

	if p.Theme().Dark {
		pl.BackgroundColor = darkBackground
		pl.Title.TextStyle.Color = darkForeground
		pl.Legend.TextStyle.Color = darkForeground
		for _, a := range []*plot.Axis{&pl.X, &pl.Y} {
			a.Color = darkForeground
			a.Label.TextStyle.Color = darkForeground
			a.Tick.Color = darkForeground
			a.Tick.Label.Color = darkForeground
		}
	}
	return pl
}

func placeholder(p *benchchart.Plotter, msg string) *plot.Plot {
	pl := newPlot(p)
	pl.Title.Text = msg
	pl.HideAxes()
	return pl
}

// setAxis applies the display settings shared by every axis kind.
func setAxis(a *plot.Axis, ap benchchart.AxisParams) {
	if ap.TitleVisible {
		a.Label.Text = ap.Title
	}
	a.Label.TextStyle.Font.Size = vg.Points(float64(ap.TitleSize))
	a.Tick.Label.Font.Size = vg.Points(float64(ap.LabelSize))
}

// hideAxes hides the axes of pl that are not visible. It must run
// after the ticks are set up.
func hideAxes(pl *plot.Plot, x, y benchchart.AxisParams) {
	for _, h := range []struct {
		a  *plot.Axis
		ap benchchart.AxisParams
	}{{&pl.X, x}, {&pl.Y, y}} {
		if h.ap.Visible {
			continue
		}
		h.a.Label.Text = ""
		h.a.LineStyle.Width = 0
		h.a.Tick.Length = 0
		h.a.Tick.Marker = plot.ConstantTicks(nil)
	}
}

// axisLabels returns the tick labeling of the given axis of p. The
// value axis of counts and rates left at the default format shows
// prefixed numbers, as in "1.50k", with binary prefixes for byte
// rates.
func axisLabels(p *benchchart.Plotter, axis int) tickLabels {
	ap := p.Chart().Axes[axis]
	tl := tickLabels{format: ap.LabelFormat}
	if y := p.Params().Y; axis == benchchart.AxisY && !y.IsTimeBased() && ap.LabelFormat == benchchart.DefaultLabelFormat {
		tl.prefixed = true
		tl.class = benchunit.ClassOf(y.Unit())
	}
	return tl
}

// setValueAxis applies the settings of a value axis. Categorical
// axes are labeled with labels, others with tl.
func setValueAxis(a *plot.Axis, ap benchchart.AxisParams, labels []benchproc.Label, tl tickLabels) {
	setAxis(a, ap)
	a.Min, a.Max = ap.Min, ap.Max
	switch {
	case len(labels) > 0:
		ticks := make([]plot.Tick, len(labels))
		for i, l := range labels {
			ticks[i] = plot.Tick{Value: l.Value, Label: l.Name}
		}
		a.Tick.Marker = plot.ConstantTicks(ticks)
	case ap.Log && ap.Min > 0:
		// Log scales need a strictly positive range.
		a.Scale = plot.LogScale{}
		a.Tick.Marker = logTicks{ap.LogBase, tl}
	default:
		a.Tick.Marker = linearTicks{ap.Ticks, ap.MinorTicks, tl}
	}
}

func lines(pl *plot.Plot, c *benchchart.Chart, cfgs []benchchart.SeriesConfig, legend bool) error {
	for i, s := range c.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		l.Color = cfgs[i].NewColor
		l.Width = vg.Points(1.5)
		pl.Add(l)
		if c.Kind == benchchart.Spline {
			pts.Color = cfgs[i].NewColor
			pts.Shape = draw.CircleGlyph{}
			pl.Add(pts)
		}
		if legend {
			pl.Legend.Add(cfgs[i].NewName, l)
		}
	}
	return nil
}

// categoryAxes returns the category and value axes of a bar or box
// plot.
func categoryAxes(pl *plot.Plot, horizontal bool) (cat, val *plot.Axis) {
	if horizontal {
		return &pl.Y, &pl.X
	}
	return &pl.X, &pl.Y
}

// groupOffset returns the offset of the i'th of n side by side
// elements of width w.
func groupOffset(i, n int, w vg.Length) vg.Length {
	const spacing = vg.Length(2)
	group := (w + spacing) * vg.Length(n-1)
	return (w+spacing)*vg.Length(i) - group/2
}

func bars(pl *plot.Plot, c *benchchart.Chart, cfgs []benchchart.SeriesConfig, legend bool, yl tickLabels) error {
	horizontal := c.Kind == benchchart.HBar
	w := vg.Points(48 / float64(len(c.Series)))
	for i, s := range c.Series {
		bc, err := plotter.NewBarChart(plotter.Values(s.Bars), w)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		bc.Horizontal = horizontal
		bc.Offset = groupOffset(i, len(c.Series), w)
		bc.Color = cfgs[i].NewColor
		bc.LineStyle.Width = 0
		pl.Add(bc)
		if legend {
			pl.Legend.Add(cfgs[i].NewName, bc)
		}
	}

	cat, val := categoryAxes(pl, horizontal)
	setAxis(cat, c.Axes[benchchart.AxisX])
	if len(c.Categories) > 1 || (len(c.Categories) == 1 && c.Categories[0] != "") {
		if horizontal {
			pl.NominalY(c.Categories...)
		} else {
			pl.NominalX(c.Categories...)
		}
	}
	// Bars start at zero, which a log scale cannot show.
	y := c.Axes[benchchart.AxisY]
	y.Log = false
	setValueAxis(val, y, nil, yl)
	return nil
}

func boxes(pl *plot.Plot, c *benchchart.Chart, cfgs []benchchart.SeriesConfig, legend bool, yl tickLabels) error {
	w := vg.Points(40 / float64(len(c.Series)))
	var labels []string
	for i, s := range c.Series {
		for j, b := range s.Boxes {
			// The empirical quartiles of the five numbers are the
			// numbers themselves.
			vals := plotter.Values{b.Min, b.LowQuart, b.Median, b.UppQuart, b.Max}
			bp, err := plotter.NewBoxPlot(w, float64(j), vals)
			if err != nil {
				return fmt.Errorf("series %s: %w", s.Name, err)
			}
			bp.Offset = groupOffset(i, len(c.Series), w)
			bp.FillColor = cfgs[i].NewColor
			pl.Add(bp)
			if len(labels) <= j {
				labels = append(labels, b.Label)
			}
		}
		if legend {
			pl.Legend.Add(cfgs[i].NewName, swatch{cfgs[i].NewColor})
		}
	}
	cat, val := categoryAxes(pl, false)
	setAxis(cat, c.Axes[benchchart.AxisX])
	pl.NominalX(labels...)
	setValueAxis(val, c.Axes[benchchart.AxisY], nil, yl)
	return nil
}

// swatch is a legend thumbnail filled with c.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	poly := c.ClipPolygonY(pts)
	c.FillPolygon(s.color, poly)
}

// surfaceGrid is a plotter.GridXYZ over the rows of a surface. Rows
// run along the plot Y axis; the chart values are the grid values.
type surfaceGrid [][]benchchart.Point3

func (g surfaceGrid) Dims() (c, r int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}

func (g surfaceGrid) Z(c, r int) float64 { return g[r][c].Y }
func (g surfaceGrid) X(c int) float64    { return g[0][c].X }
func (g surfaceGrid) Y(r int) float64    { return g[r][0].Z }

// tickLabels formats the labels of the major ticks of an axis.
type tickLabels struct {
	format string
	// prefixed labels use a common SI or binary prefix instead of
	// format.
	prefixed bool
	class    benchunit.Class
}

func (l tickLabels) labels(vals []float64) []string {
	out := make([]string, len(vals))
	if l.prefixed {
		s := benchunit.CommonScale(vals, l.class)
		for i, v := range vals {
			out[i] = s.Format(v)
		}
		return out
	}
	for i, v := range vals {
		out[i] = fmt.Sprintf(l.format, v)
	}
	return out
}

// linearTicks places n evenly spaced labeled ticks over the axis
// range, with minor unlabeled ticks between them.
type linearTicks struct {
	n, minor int
	labels   tickLabels
}

func (t linearTicks) Ticks(min, max float64) []plot.Tick {
	if t.n < 2 || !(min < max) {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	step := (max - min) / float64(t.n-1)
	major := make([]float64, t.n)
	for i := range major {
		major[i] = min + float64(i)*step
	}
	var ticks []plot.Tick
	for i, label := range t.labels.labels(major) {
		ticks = append(ticks, plot.Tick{Value: major[i], Label: label})
		if i == t.n-1 {
			break
		}
		for m := 1; m <= t.minor; m++ {
			ticks = append(ticks, plot.Tick{Value: major[i] + step*float64(m)/float64(t.minor+1)})
		}
	}
	return ticks
}

// logTicks places labeled ticks at the powers of base in the axis
// range.
type logTicks struct {
	base   int
	labels tickLabels
}

func (t logTicks) Ticks(min, max float64) []plot.Tick {
	if t.base < 2 || min <= 0 || !(min < max) {
		return plot.LogTicks{}.Ticks(min, max)
	}
	b := float64(t.base)
	lo := math.Floor(math.Log(min) / math.Log(b))
	hi := math.Ceil(math.Log(max) / math.Log(b))
	var major []float64
	for e := lo; e <= hi; e++ {
		if v := math.Pow(b, e); v >= min && v <= max {
			major = append(major, v)
		}
	}
	if len(major) == 0 {
		return plot.LogTicks{}.Ticks(min, max)
	}
	ticks := make([]plot.Tick, len(major))
	for i, label := range t.labels.labels(major) {
		ticks[i] = plot.Tick{Value: major[i], Label: label}
	}
	return ticks
}
