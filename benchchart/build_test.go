// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"testing"

	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/benchmath"
	"github.com/benchviz/benchplot/benchproc"
	"github.com/google/go-cmp/cmp"
)

// bench is a benchmark name and its real time in microseconds.
type bench struct {
	name string
	us   float64
}

// results builds a ResultSet read from a file in time unit unit.
func results(t *testing.T, unit string, benches ...bench) *benchfmt.ResultSet {
	t.Helper()
	rs := &benchfmt.ResultSet{Meta: benchfmt.Meta{TimeUnit: unit}}
	for _, b := range benches {
		n := benchfmt.ParseName(b.name)
		rs.Records = append(rs.Records, &benchfmt.Record{
			Name:        b.name,
			Base:        n.Base,
			Templates:   n.Templates,
			Arguments:   n.Arguments,
			Modifiers:   n.Modifiers,
			Threads:     n.Threads,
			Repetitions: 1,
			Iterations:  benchmath.Constant(100),
			RealTime:    benchmath.Constant(b.us),
			CPUTime:     benchmath.Constant(b.us / 2),
		})
	}
	return rs
}

func lineParams() PlotParams {
	return PlotParams{Kind: Line, X: benchproc.Arg(0), Y: RealTime}
}

func TestBuildLines(t *testing.T) {
	rs := results(t, "ns",
		bench{"BM_Foo/8", 1}, bench{"BM_Foo/16", 2}, bench{"BM_Foo/32", 4},
		bench{"BM_Bar/8", 3},
		bench{"BM_Baz/8", 1}, bench{"BM_Baz/16", 1},
	)
	c := Build(rs, rs.AllIndexes(), lineParams())

	want := []Series{{
		Name:   "BM_Foo",
		Points: []Point{{8, 1000}, {16, 2000}, {32, 4000}},
	}}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	if len(c.Warnings) != 2 {
		t.Fatalf("want 2 warnings, got %v", c.Warnings)
	}
	var under *benchproc.UndersizeError
	if !errors.As(c.Warnings[0], &under) || under.Name != "BM_Bar" || under.Min != Line.MinSize() {
		t.Errorf("want undersize warning for BM_Bar, got %v", c.Warnings[0])
	}
	var asym *benchproc.AsymmetryError
	if !errors.As(c.Warnings[1], &asym) || asym.Name != "BM_Baz" {
		t.Errorf("want asymmetry warning for BM_Baz, got %v", c.Warnings[1])
	}

	if got := c.Axes[AxisX].Title; got != "Argument 1" {
		t.Errorf("X title: got %q", got)
	}
	if got := c.Axes[AxisY].Title; got != "Real time (ns)" {
		t.Errorf("Y title: got %q", got)
	}
	if x := c.Axes[AxisX]; x.Min != 8 || x.Max != 32 || x.Ticks != 9 {
		t.Errorf("X axis: got %+v", x)
	}
	if y := c.Axes[AxisY]; y.Min > 1000 || y.Max < 4000 || y.Ticks != 5 {
		t.Errorf("Y axis: got %+v", y)
	}
	if c.Empty() {
		t.Errorf("chart is empty")
	}
}

func TestBuildLinesModifiers(t *testing.T) {
	rs := results(t, "ns",
		bench{"BM_Foo/8/threads:1", 1}, bench{"BM_Foo/16/threads:1", 2},
		bench{"BM_Foo/8/threads:4", 3}, bench{"BM_Foo/16/threads:4", 4},
	)
	c := Build(rs, rs.AllIndexes(), lineParams())
	want := []Series{
		{Name: "BM_Foo/threads:1", Points: []Point{{8, 1000}, {16, 2000}}},
		{Name: "BM_Foo/threads:4", Points: []Point{{8, 3000}, {16, 4000}}},
	}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	if len(c.Warnings) != 0 {
		t.Errorf("want no warnings, got %v", c.Warnings)
	}
}

func TestBuildLinesCategorical(t *testing.T) {
	rs := results(t, "us",
		bench{"BM_Sort/x:1/int", 1}, bench{"BM_Sort/x:1/float", 2},
		bench{"BM_Sort/x:2/int", 3}, bench{"BM_Sort/x:2/float", 4},
	)
	c := Build(rs, rs.AllIndexes(), PlotParams{Kind: Line, X: benchproc.Arg(1), Y: CPUTime})
	want := []Series{
		{Name: "BM_Sort/x:1", Points: []Point{{0, 0.5}, {1, 1}}},
		{Name: "BM_Sort/x:2", Points: []Point{{0, 1.5}, {1, 2}}},
	}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	wantLabels := []benchproc.Label{{Value: 0, Name: "int"}, {Value: 1, Name: "float"}}
	if diff := cmp.Diff(wantLabels, c.XLabels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if got := c.Axes[AxisY].Title; got != "CPU time (us)" {
		t.Errorf("Y title: got %q", got)
	}

	// Key-value arguments resolve to their value.
	c = Build(rs, rs.AllIndexes(), PlotParams{Kind: Line, X: benchproc.Arg(0), Y: Iterations})
	if got := c.Axes[AxisX].Title; got != "Argument 1" {
		t.Errorf("X title: got %q", got)
	}
	if got := c.Axes[AxisY].Title; got != "Iterations" {
		t.Errorf("Y title: got %q", got)
	}
	if got := c.Series[0].Points; got[0].Y != 100 || got[1].X != 2 {
		t.Errorf("points: got %v", got)
	}
}

func TestBuildLinesLabelConflict(t *testing.T) {
	rs := results(t, "us",
		bench{"BM_A/x/1", 1}, bench{"BM_A/y/1", 2},
		bench{"BM_A/8/2", 3}, bench{"BM_A/y/2", 4},
	)
	c := Build(rs, rs.AllIndexes(), lineParams())
	if len(c.Series) != 2 {
		t.Fatalf("want 2 series, got %v", c.Series)
	}
	wantLabels := []benchproc.Label{{Value: 0, Name: "x"}, {Value: 1, Name: "y"}}
	if diff := cmp.Diff(wantLabels, c.XLabels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	var lc *benchproc.LabelConflictError
	if len(c.Warnings) != 1 || !errors.As(c.Warnings[0], &lc) || lc.Name != "x" || lc.Other != "8" {
		t.Errorf("want a label conflict for x and 8, got %v", c.Warnings)
	}
}

func TestBuildLinesPlaceholder(t *testing.T) {
	rs := results(t, "ns", bench{"BM_Foo/8", 1}, bench{"BM_Bar/8", 1})
	c := Build(rs, rs.AllIndexes(), lineParams())
	if !c.Empty() || c.Placeholder != msgNoLines {
		t.Errorf("placeholder: got %q", c.Placeholder)
	}
	if len(c.Series) != 0 {
		t.Errorf("want no series, got %v", c.Series)
	}
	if len(c.Axes) != 2 {
		t.Errorf("want 2 axes, got %d", len(c.Axes))
	}
}

func TestBuildBars(t *testing.T) {
	rs := results(t, "ns",
		bench{"BM_A/1", 1}, bench{"BM_A/2", 2},
		bench{"BM_B/1", 3}, bench{"BM_B/2", 4}, bench{"BM_B/3", 5},
	)
	c := Build(rs, rs.AllIndexes(), PlotParams{Kind: Bar, X: benchproc.Arg(0), Y: RealTime})
	want := []Series{
		{Name: "BM_A", Bars: []float64{1000, 2000}},
		{Name: "BM_B", Bars: []float64{3000, 4000, 5000}},
	}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, c.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if x := c.Axes[AxisX]; !x.Category || x.Title != "Argument 1" {
		t.Errorf("X axis: got %+v", x)
	}
	if got := c.Axes[AxisY].Title; got != "Real time (ns)" {
		t.Errorf("Y title: got %q", got)
	}

	// Disagreeing labels are dropped.
	rs = results(t, "us", bench{"BM_A/1", 1}, bench{"BM_B/2", 1})
	c = Build(rs, rs.AllIndexes(), PlotParams{Kind: HBar, X: benchproc.Arg(0), Y: RealTime})
	if diff := cmp.Diff([]string{""}, c.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBoxes(t *testing.T) {
	rs := results(t, "us", bench{"BM_A/1", 1}, bench{"BM_A/2", 2})
	st := benchmath.NewSample([]float64{1, 2, 3, 4, 5}).Summary()
	rs.Records[1].RealTime = st
	c := Build(rs, rs.AllIndexes(), PlotParams{Kind: Box, X: benchproc.Arg(0), Y: RealTimeMedian})
	want := []Series{{
		Name: "BM_A",
		Boxes: []BoxStats{
			{Label: "1", Min: 1, LowQuart: 1, Median: 1, UppQuart: 1, Max: 1},
			{Label: "2", Min: 1, LowQuart: st.LowQuart, Median: 3, UppQuart: st.UppQuart, Max: 5},
		},
	}}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	if !c.Axes[AxisX].Category {
		t.Errorf("X axis is not a category axis")
	}
}

func TestBuildSurfaceRows(t *testing.T) {
	rs := results(t, "us",
		bench{"BM_S/1/10", 1}, bench{"BM_S/2/10", 2},
		bench{"BM_S/1/20", 3}, bench{"BM_S/2/20", 4},
	)
	p := PlotParams{Kind: Surface, X: benchproc.Arg(0), Y: RealTime}
	c := Build(rs, rs.AllIndexes(), p)
	want := []Series{{
		Rows: [][]Point3{
			{{1, 1, 0}, {2, 2, 0}},
			{{1, 3, 1}, {2, 4, 1}},
		},
	}}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	if len(c.Axes) != 3 {
		t.Fatalf("want 3 axes, got %d", len(c.Axes))
	}
	for i, a := range c.Axes {
		if a.MinorTicks != 1 {
			t.Errorf("axis %d minor ticks: got %d", i, a.MinorTicks)
		}
	}

	// An asymmetric row means no surface at all.
	rs = results(t, "us",
		bench{"BM_S/1/10", 1}, bench{"BM_S/2/10", 2},
		bench{"BM_S/1/20", 3},
	)
	c = Build(rs, rs.AllIndexes(), p)
	if !c.Empty() || len(c.Series) != 0 || len(c.Warnings) != 1 {
		t.Errorf("want empty chart and a warning, got %+v", c)
	}
}

func TestBuildSurfaces(t *testing.T) {
	z := benchproc.Tmpl(0)
	p := PlotParams{Kind: Surface, X: benchproc.Arg(0), Y: RealTime, Z: &z}
	rs := results(t, "us",
		bench{"BM_Foo<int>/1", 1}, bench{"BM_Foo<int>/2", 2},
		bench{"BM_Foo<float>/1", 3}, bench{"BM_Foo<float>/2", 4},
		bench{"BM_Bar<int>/1", 5},
	)
	c := Build(rs, rs.AllIndexes(), p)
	want := []Series{{
		Name: "BM_Foo",
		Rows: [][]Point3{
			{{1, 1, 0}, {2, 2, 0}},
			{{1, 3, 1}, {2, 4, 1}},
		},
	}}
	if diff := cmp.Diff(want, c.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	wantZ := []benchproc.Label{{Value: 0, Name: "int"}, {Value: 1, Name: "float"}}
	if diff := cmp.Diff(wantZ, c.ZLabels); diff != "" {
		t.Errorf("Z labels mismatch (-want +got):\n%s", diff)
	}
	if got := c.Axes[AxisZ].Title; got != "Template 1" {
		t.Errorf("Z title: got %q", got)
	}
	if len(c.Warnings) != 1 {
		t.Errorf("want a warning for BM_Bar, got %v", c.Warnings)
	}
}

func TestClone(t *testing.T) {
	rs := results(t, "ns", bench{"BM_Foo/8", 1}, bench{"BM_Foo/16", 2})
	c := Build(rs, rs.AllIndexes(), lineParams())
	n := c.Clone()
	if diff := cmp.Diff(c, n); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	n.Series[0].Points[0].Y = -1
	n.Axes[AxisY].Title = "changed"
	if c.Series[0].Points[0].Y == -1 || c.Axes[AxisY].Title == "changed" {
		t.Errorf("clone shares data with the original")
	}
}
