// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart builds chart state from benchmark results and
// keeps it up to date as result files change.
//
// Build turns a benchfmt.ResultSet into a Chart: plain data that a
// rendering layer binds to when drawing. A Plotter owns a Chart
// together with the user's customizations of it (theme, legend,
// series names and colors, axis settings) and applies commands to
// it. Plotter.Reload re-reads the result files and either updates
// the chart data in place, rebuilds the chart, or reports that the
// new data no longer fits the chart.
package benchchart

import (
	"github.com/benchviz/benchplot/benchproc"
)

// Axis indexes of Chart.Axes.
const (
	AxisX = iota
	AxisY
	AxisZ
)

var axisNames = []string{"x", "y", "z"}

// A Point is a point of a line series.
type Point struct {
	X, Y float64
}

// A Point3 is a vertex of a surface row. Y is the value axis.
type Point3 struct {
	X, Y, Z float64
}

// A BoxStats is the five-number summary of one record of a box series.
type BoxStats struct {
	// Label is the X parameter value of the record.
	Label string

	Min, LowQuart, Median, UppQuart, Max float64
}

// A Series is one plotted series. Which data field is set depends on
// the chart kind.
type Series struct {
	// Name is the name the series was built with. It is the
	// identity of the series across reloads and in settings.
	Name string

	Points []Point    // Line, Spline
	Bars   []float64  // Bar, HBar
	Boxes  []BoxStats // Box
	Rows   [][]Point3 // Surface
}

// Len returns the number of points, bars, boxes or rows of s.
func (s *Series) Len() int {
	switch {
	case s.Points != nil:
		return len(s.Points)
	case s.Bars != nil:
		return len(s.Bars)
	case s.Boxes != nil:
		return len(s.Boxes)
	}
	return len(s.Rows)
}

// scaleY multiplies every value of s by f.
func (s *Series) scaleY(f float64) {
	for i := range s.Points {
		s.Points[i].Y *= f
	}
	for i := range s.Bars {
		s.Bars[i] *= f
	}
	for i := range s.Boxes {
		b := &s.Boxes[i]
		b.Min *= f
		b.LowQuart *= f
		b.Median *= f
		b.UppQuart *= f
		b.Max *= f
	}
	for _, row := range s.Rows {
		for i := range row {
			row[i].Y *= f
		}
	}
}

// AxisParams is the display state of one chart axis.
type AxisParams struct {
	// Category is set for axes showing labels rather than values,
	// such as the X axis of bar charts. Category axes have no
	// range, scale or tick settings.
	Category bool

	Visible      bool
	TitleVisible bool
	Title        string
	TitleSize    int

	Log     bool
	LogBase int

	LabelFormat string
	LabelSize   int

	Min, Max          float64
	Ticks, MinorTicks int
}

// DefaultLabelFormat is the tick label format of new value axes.
const DefaultLabelFormat = "%g"

const (
	defaultFontSize = 8
	defaultLogBase  = 10
)

func newAxis(title string, ticks int) AxisParams {
	return AxisParams{
		Visible:      true,
		TitleVisible: true,
		Title:        title,
		TitleSize:    defaultFontSize,
		LogBase:      defaultLogBase,
		LabelFormat:  DefaultLabelFormat,
		LabelSize:    defaultFontSize,
		Ticks:        ticks,
	}
}

// A Chart is the data and axes of a chart, ready to be drawn.
type Chart struct {
	Kind   Kind
	Series []Series

	// Categories holds the category axis labels of bar charts. It
	// is [""] if the series disagree on their labels.
	Categories []string

	// XLabels and ZLabels name the coordinates of categorical
	// axes.
	XLabels, ZLabels []benchproc.Label

	Axes []AxisParams

	// Placeholder is the message shown instead of the chart when
	// no series could be built.
	Placeholder string

	// Warnings lists the subsets that were left out of the chart
	// and why.
	Warnings []error
}

// Empty reports whether c has no series to draw.
func (c *Chart) Empty() bool {
	return c.Placeholder != ""
}

func (c *Chart) scaleY(f float64) {
	for i := range c.Series {
		c.Series[i].scaleY(f)
	}
}

// dataRange returns the extent of the values plotted on axis.
func (c *Chart) dataRange(axis int) (min, max float64, ok bool) {
	first := true
	add := func(v float64) {
		if first {
			min, max, first = v, v, false
			return
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	for _, s := range c.Series {
		for _, p := range s.Points {
			add([]float64{p.X, p.Y}[axis])
		}
		if axis == AxisY {
			for _, v := range s.Bars {
				add(v)
			}
			for _, b := range s.Boxes {
				add(b.Min)
				add(b.Max)
			}
		}
		for _, row := range s.Rows {
			for _, p := range row {
				add([]float64{p.X, p.Y, p.Z}[axis])
			}
		}
	}
	return min, max, !first
}

// Clone returns a deep copy of c.
func (c *Chart) Clone() *Chart {
	n := *c
	n.Series = make([]Series, len(c.Series))
	for i, s := range c.Series {
		n.Series[i] = s.clone()
	}
	n.Categories = cloneSlice(c.Categories)
	n.XLabels = cloneSlice(c.XLabels)
	n.ZLabels = cloneSlice(c.ZLabels)
	n.Axes = cloneSlice(c.Axes)
	n.Warnings = cloneSlice(c.Warnings)
	return &n
}

func (s Series) clone() Series {
	s.Points = cloneSlice(s.Points)
	s.Bars = cloneSlice(s.Bars)
	s.Boxes = cloneSlice(s.Boxes)
	if s.Rows != nil {
		rows := make([][]Point3, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = cloneSlice(r)
		}
		s.Rows = rows
	}
	return s
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
