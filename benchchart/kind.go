// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/benchmath"
	"github.com/benchviz/benchplot/benchproc"
	"github.com/benchviz/benchplot/benchunit"
)

// A Kind is a chart kind.
type Kind int

const (
	Bar Kind = iota
	HBar
	Box
	Line
	Spline
	Surface
)

var kindNames = []string{"bar", "hbar", "box", "line", "spline", "surface"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a chart kind name as returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown chart kind %q", s)
}

// Group returns the name of the settings group of charts of kind k.
// Related kinds share settings.
func (k Kind) Group() string {
	switch k {
	case Bar, HBar:
		return "bars"
	case Box:
		return "boxes"
	case Line, Spline:
		return "lines"
	case Surface:
		return "3dsurface"
	}
	panic("bad chart kind " + k.String())
}

// MinSize returns the minimum number of records of a series of a
// chart of kind k.
func (k Kind) MinSize() int {
	switch k {
	case Line, Spline, Surface:
		return 2
	}
	return 1
}

// lineOrSurface reports whether k draws its values along a
// continuous X axis.
func (k Kind) lineOrSurface() bool {
	return k == Line || k == Spline || k == Surface
}

// A YKind is the metric plotted on the value axis.
type YKind int

const (
	RealTime YKind = iota
	CPUTime
	Iterations
	BytesPerSec
	ItemsPerSec
	RealTimeMin
	RealTimeMedian
	RealTimeMax
	CPUTimeMin
	CPUTimeMedian
	CPUTimeMax
)

var yKindNames = []struct{ key, title string }{
	RealTime:       {"real_time", "Real time"},
	CPUTime:        {"cpu_time", "CPU time"},
	Iterations:     {"iterations", "Iterations"},
	BytesPerSec:    {"bytes", "Bytes/sec"},
	ItemsPerSec:    {"items", "Items/sec"},
	RealTimeMin:    {"real_time_min", "Real min time"},
	RealTimeMedian: {"real_time_median", "Real median time"},
	RealTimeMax:    {"real_time_max", "Real max time"},
	CPUTimeMin:     {"cpu_time_min", "CPU min time"},
	CPUTimeMedian:  {"cpu_time_median", "CPU median time"},
	CPUTimeMax:     {"cpu_time_max", "CPU max time"},
}

func (y YKind) String() string {
	if int(y) < len(yKindNames) {
		return yKindNames[y].key
	}
	return fmt.Sprintf("YKind(%d)", int(y))
}

// ParseYKind parses a metric name as returned by YKind.String.
func ParseYKind(s string) (YKind, error) {
	for i, n := range yKindNames {
		if s == n.key {
			return YKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// IsTimeBased reports whether y is measured in time units.
func (y YKind) IsTimeBased() bool {
	switch y {
	case Iterations, BytesPerSec, ItemsPerSec:
		return false
	}
	return true
}

// Unit returns the unit of the rate metrics, "B/s" and "items/s", or
// "" for other metrics.
func (y YKind) Unit() string {
	switch y {
	case BytesPerSec:
		return "B/s"
	case ItemsPerSec:
		return "items/s"
	}
	return ""
}

// Title returns the value axis title for y. Time-based metrics end
// with the unit suffix, as in "Real time (us)".
func (y YKind) Title(unit benchunit.TimeUnit) string {
	t := yKindNames[y].title
	if y.IsTimeBased() {
		t += " " + unit.Suffix()
	}
	return t
}

// Value returns the scalar value of metric y for rec, in the units
// rec was normalized to.
func (y YKind) Value(rec *benchfmt.Record) float64 {
	switch y {
	case RealTime:
		return rec.RealTime.Mean
	case CPUTime:
		return rec.CPUTime.Mean
	case Iterations:
		return rec.Iterations.Mean
	case BytesPerSec:
		return rec.BytesPerSec.Mean
	case ItemsPerSec:
		return rec.ItemsPerSec.Mean
	case RealTimeMin:
		return rec.RealTime.Min
	case RealTimeMedian:
		return rec.RealTime.Median
	case RealTimeMax:
		return rec.RealTime.Max
	case CPUTimeMin:
		return rec.CPUTime.Min
	case CPUTimeMedian:
		return rec.CPUTime.Median
	case CPUTimeMax:
		return rec.CPUTime.Max
	}
	panic("bad metric " + y.String())
}

// Stats returns the distribution of the measurement underlying y for
// rec. The min, median and max variants share the distribution of
// their base metric.
func (y YKind) Stats(rec *benchfmt.Record) benchmath.Summary {
	switch y {
	case RealTime, RealTimeMin, RealTimeMedian, RealTimeMax:
		return rec.RealTime
	case CPUTime, CPUTimeMin, CPUTimeMedian, CPUTimeMax:
		return rec.CPUTime
	case Iterations:
		return rec.Iterations
	case BytesPerSec:
		return rec.BytesPerSec
	case ItemsPerSec:
		return rec.ItemsPerSec
	}
	panic("bad metric " + y.String())
}

// PlotParams selects what a chart plots. It does not change during
// the life of a chart.
type PlotParams struct {
	Kind Kind
	X    benchproc.Slot
	Y    YKind
	// Z is the slot of the depth axis of a surface, or nil to
	// plot one row per X series.
	Z *benchproc.Slot
}
