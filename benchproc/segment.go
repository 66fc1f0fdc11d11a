// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"

	"github.com/benchviz/benchplot/benchfmt"
)

// A Surface is the row-by-column grouping of the records of one
// surface series.
type Surface struct {
	// Name is the record identity with both the X and Z
	// parameters erased.
	Name string
	Rows []Row
}

// A Row holds the records of a Surface that share one Z value, in X
// order.
type Row struct {
	ZName string
	Idxs  []int
}

// Subsets returns the rows of s as Subsets named by their Z value.
func (s *Surface) Subsets() []Subset {
	subs := make([]Subset, len(s.Rows))
	for i, row := range s.Rows {
		subs[i] = Subset{row.ZName, row.Idxs}
	}
	return subs
}

// Segment3D groups the records of rs at idxs into surfaces: one per
// identity with both x and z erased, one row per value of z within
// each surface, and the row's records grouped by x.
//
// Surfaces are not validated. Use CheckSubsets on the rows of each
// Surface before plotting it.
func Segment3D(rs *benchfmt.ResultSet, idxs []int, x, z Slot) []Surface {
	var surfaces []Surface
	for _, named := range Segment2DNames(rs, idxs, x, z) {
		s := Surface{Name: named.Name}
		for _, zsub := range SegmentParam(rs, named.Idxs, z) {
			row := Row{ZName: zsub.Name}
			// Records of one Z row share everything but x, so
			// they form a single group.
			for _, xsub := range Group(rs, zsub.Idxs, x) {
				row.Idxs = append(row.Idxs, xsub.Idxs...)
			}
			s.Rows = append(s.Rows, row)
		}
		surfaces = append(surfaces, s)
	}
	return surfaces
}

// An AsymmetryError reports a subset whose size differs from the size
// of the first subset of its group.
type AsymmetryError struct {
	Name      string
	Size      int
	FirstSize int
}

func (e *AsymmetryError) Error() string {
	return fmt.Sprintf("inconsistent number of X-values for %s: %d, first series has %d", e.Name, e.Size, e.FirstSize)
}

// An UndersizeError reports a subset with fewer than the minimum
// number of records.
type UndersizeError struct {
	Name string
	Size int
	Min  int
}

func (e *UndersizeError) Error() string {
	return fmt.Sprintf("not enough X-values for %s: %d, need at least %d", e.Name, e.Size, e.Min)
}

// CheckSubsets checks that all subsets have the size of the first one
// and at least min records. It returns an *AsymmetryError or an
// *UndersizeError for the first subset violating either rule, or nil.
func CheckSubsets(subsets []Subset, min int) error {
	if len(subsets) == 0 {
		return nil
	}
	first := len(subsets[0].Idxs)
	for _, sub := range subsets {
		n := len(sub.Idxs)
		if n != first {
			return &AsymmetryError{sub.Name, n, first}
		}
		if n < min {
			return &UndersizeError{sub.Name, n, min}
		}
	}
	return nil
}
