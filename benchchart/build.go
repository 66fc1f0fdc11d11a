// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/benchunit"
)

const (
	msgNoLines    = "No series with at least 2 points to display"
	msgNoCompat   = "No compatible series to display"
	valueTicks    = 5
	lineXTicks    = 9
	surfaceXTicks = 8
)

// Build builds the chart of the records of rs at idxs. Time-based
// values are shown in the time unit of the result file.
//
// Subsets that cannot be plotted are left out and reported in
// Chart.Warnings. If nothing can be plotted, Chart.Placeholder says
// why.
func Build(rs *benchfmt.ResultSet, idxs []int, p PlotParams) *Chart {
	return build(rs, idxs, p, fileUnit(rs))
}

// fileUnit returns the time unit of the result file of rs.
func fileUnit(rs *benchfmt.ResultSet) benchunit.TimeUnit {
	u, err := benchunit.ParseTimeUnit(rs.Meta.TimeUnit)
	if err != nil {
		return benchunit.Microsecond
	}
	return u
}

func build(rs *benchfmt.ResultSet, idxs []int, p PlotParams, unit benchunit.TimeUnit) *Chart {
	b := &builder{
		rs:     rs,
		p:      p,
		unit:   unit,
		factor: 1,
		c:      &Chart{Kind: p.Kind},
	}
	if p.Y.IsTimeBased() {
		b.factor = unit.Factor()
	}
	switch p.Kind {
	case Line, Spline:
		b.lines(idxs)
	case Bar, HBar:
		b.bars(idxs)
	case Box:
		b.boxes(idxs)
	case Surface:
		if p.Z == nil {
			b.surfaceRows(idxs)
		} else {
			b.surfaces(idxs)
		}
	default:
		panic("bad chart kind " + p.Kind.String())
	}
	return b.c
}

// minorTicks returns the default number of minor ticks of the value
// axes of charts of kind k.
func minorTicks(k Kind) int {
	if k == Surface {
		return 1
	}
	return 0
}

// A builder holds the state of one Build.
type builder struct {
	rs     *benchfmt.ResultSet
	p      PlotParams
	unit   benchunit.TimeUnit
	factor float64
	c      *Chart
}

func (b *builder) warn(err error) {
	b.c.Warnings = append(b.c.Warnings, err)
}

func (b *builder) y(idx int) float64 {
	return b.p.Y.Value(b.rs.Records[idx]) * b.factor
}

func (b *builder) xName(idx int) string {
	v, _ := b.p.X.Value(b.rs.Records[idx])
	return v
}

func (b *builder) yTitle() string {
	return b.p.Y.Title(b.unit)
}

// fitValueAxis sets the range of axis to the nice range of its data.
func (b *builder) fitValueAxis(axis int) {
	a := &b.c.Axes[axis]
	min, max, ok := b.c.dataRange(axis)
	if !ok {
		return
	}
	a.Min, a.Max = benchunit.NiceRange(min, max, a.Ticks)
}

// fitAxis sets the range of axis to the extent of its data.
func (b *builder) fitAxis(axis int) {
	a := &b.c.Axes[axis]
	if min, max, ok := b.c.dataRange(axis); ok {
		a.Min, a.Max = min, max
	}
}
