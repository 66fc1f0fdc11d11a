// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"errors"
	"testing"

	"github.com/benchviz/benchplot/benchfmt"
	"github.com/google/go-cmp/cmp"
)

// r builds a ResultSet from benchmark names.
func r(t *testing.T, names ...string) *benchfmt.ResultSet {
	t.Helper()
	rs := new(benchfmt.ResultSet)
	for _, name := range names {
		n := benchfmt.ParseName(name)
		rs.Records = append(rs.Records, &benchfmt.Record{
			Name:      name,
			Base:      n.Base,
			Templates: n.Templates,
			Arguments: n.Arguments,
			Modifiers: n.Modifiers,
			Threads:   n.Threads,
		})
	}
	return rs
}

func TestGroup(t *testing.T) {
	check := func(rs *benchfmt.ResultSet, idxs []int, slot Slot, want []Subset) {
		t.Helper()
		got := Group(rs, idxs, slot)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Group(%v) mismatch (-want +got):\n%s", slot, diff)
		}
		// Grouping is idempotent.
		if diff := cmp.Diff(got, Group(rs, idxs, slot)); diff != "" {
			t.Errorf("Group(%v) not idempotent:\n%s", slot, diff)
		}
	}

	rs := r(t, "BM_Foo/8", "BM_Foo/16", "BM_Foo/32")
	check(rs, rs.AllIndexes(), Arg(0), []Subset{{"BM_Foo", []int{0, 1, 2}}})

	rs = r(t, "BM_Foo/8/1", "BM_Bar/8/1", "BM_Foo/16/1", "BM_Foo/8/2", "BM_Foo/16/2", "BM_Bar/16/1")
	check(rs, rs.AllIndexes(), Arg(0), []Subset{
		{"BM_Foo/1", []int{0, 2}},
		{"BM_Bar/1", []int{1, 5}},
		{"BM_Foo/2", []int{3, 4}},
	})
	check(rs, rs.AllIndexes(), Arg(1), []Subset{
		{"BM_Foo/8", []int{0, 3}},
		{"BM_Bar/8", []int{1}},
		{"BM_Foo/16", []int{2, 4}},
		{"BM_Bar/16", []int{5}},
	})
	// Candidate order is kept.
	check(rs, []int{4, 2, 0}, Arg(0), []Subset{
		{"BM_Foo/2", []int{4}},
		{"BM_Foo/1", []int{2, 0}},
	})

	rs = r(t, "BM_Foo<int>/8", "BM_Foo<float>/8", "BM_Foo<int>/16")
	check(rs, rs.AllIndexes(), Tmpl(0), []Subset{
		{"BM_Foo/8", []int{0, 1}},
		{"BM_Foo/16", []int{2}},
	})
	check(rs, rs.AllIndexes(), Arg(0), []Subset{
		{"BM_Foo<int>", []int{0, 2}},
		{"BM_Foo<float>", []int{1}},
	})

	// Records lacking the slot are excluded, and arity is part of
	// the identity.
	rs = r(t, "BM_Foo/8", "BM_Foo", "BM_Foo/8/1", "BM_Foo/16")
	check(rs, rs.AllIndexes(), Arg(0), []Subset{
		{"BM_Foo", []int{0, 3}},
		{"BM_Foo/1", []int{2}},
	})
	check(rs, rs.AllIndexes(), Arg(1), []Subset{{"BM_Foo/8", []int{2}}})
	check(rs, rs.AllIndexes(), Arg(5), nil)

	// Out of range candidates are ignored.
	check(rs, []int{0, 42, -1}, Arg(0), []Subset{{"BM_Foo", []int{0}}})

	// Runs that differ by their runner modifiers are distinct.
	rs = r(t,
		"BM_Foo/8/threads:1", "BM_Foo/16/threads:1", "BM_Foo/8/threads:4", "BM_Foo/16/threads:4",
		"BM_Bar/8", "BM_Bar/16", "BM_Bar/8/real_time", "BM_Bar/16/real_time",
	)
	check(rs, rs.AllIndexes(), Arg(0), []Subset{
		{"BM_Foo/threads:1", []int{0, 1}},
		{"BM_Foo/threads:4", []int{2, 3}},
		{"BM_Bar", []int{4, 5}},
		{"BM_Bar/real_time", []int{6, 7}},
	})
}

func TestSegmentParam(t *testing.T) {
	rs := r(t, "BM_Foo<int>/8", "BM_Foo<float>/8", "BM_Foo<int>/16", "BM_Bar")
	got := SegmentParam(rs, rs.AllIndexes(), Tmpl(0))
	want := []Subset{{"int", []int{0, 2}}, {"float", []int{1}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSegment3D(t *testing.T) {
	rs := r(t, "BM_Foo<int>/Bar", "BM_Foo<float>/Bar")
	got := Segment3D(rs, rs.AllIndexes(), Arg(0), Tmpl(0))
	want := []Surface{{
		Name: "BM_Foo",
		Rows: []Row{{"int", []int{0}}, {"float", []int{1}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	rs = r(t,
		"BM_Sort<int>/8", "BM_Sort<int>/16", "BM_Sort<float>/8", "BM_Sort<float>/16",
		"BM_Find<int>/8", "BM_Find<int>/16", "BM_Find<float>/8")
	got = Segment3D(rs, rs.AllIndexes(), Arg(0), Tmpl(0))
	want = []Surface{
		{Name: "BM_Sort", Rows: []Row{{"int", []int{0, 1}}, {"float", []int{2, 3}}}},
		{Name: "BM_Find", Rows: []Row{{"int", []int{4, 5}}, {"float", []int{6}}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if err := CheckSubsets(got[0].Subsets(), 2); err != nil {
		t.Errorf("BM_Sort: unexpected error %v", err)
	}
	var ae *AsymmetryError
	if err := CheckSubsets(got[1].Subsets(), 2); !errors.As(err, &ae) || ae.Name != "float" {
		t.Errorf("BM_Find: want AsymmetryError on float, got %v", err)
	}
}

func TestCheckSubsets(t *testing.T) {
	var ue *UndersizeError
	err := CheckSubsets([]Subset{{"a", []int{0}}, {"b", []int{1}}}, 2)
	if !errors.As(err, &ue) || ue.Name != "a" || ue.Size != 1 {
		t.Errorf("want UndersizeError on a, got %v", err)
	}
	var ae *AsymmetryError
	err = CheckSubsets([]Subset{{"a", []int{0, 1}}, {"b", []int{2}}}, 1)
	if !errors.As(err, &ae) || ae.Name != "b" || ae.Size != 1 || ae.FirstSize != 2 {
		t.Errorf("want AsymmetryError on b, got %v", err)
	}
	if err := CheckSubsets(nil, 2); err != nil {
		t.Errorf("empty subsets: got %v", err)
	}
}

func TestSelect(t *testing.T) {
	rs := r(t, "BM_Foo/8", "BM_Bar/8", "BM_Foo/16")
	got, err := Select(rs, "^BM_Foo")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := Select(rs, "("); err == nil {
		t.Errorf("want error for bad pattern")
	}
}
