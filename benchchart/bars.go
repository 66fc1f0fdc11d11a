// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"github.com/benchviz/benchplot/benchproc"
)

// bars builds one bar set per subset of records varying in X, with
// one bar per X value.
func (b *builder) bars(idxs []int) {
	var labels []string
	first := true
	for _, sub := range benchproc.Group(b.rs, idxs, b.p.X) {
		if len(sub.Idxs) == 0 {
			continue
		}
		s := Series{Name: sub.Name, Bars: make([]float64, 0, len(sub.Idxs))}
		cols := make([]string, 0, len(sub.Idxs))
		for _, idx := range sub.Idxs {
			cols = append(cols, b.xName(idx))
			s.Bars = append(s.Bars, b.y(idx))
		}
		b.c.Series = append(b.c.Series, s)

		// Column labels are kept only if all sets agree on them.
		switch {
		case first:
			labels = cols
		case commonPartEqual(labels, cols):
			if len(labels) < len(cols) {
				labels = cols
			}
		default:
			labels = []string{""}
		}
		first = false
	}

	x := newAxis(b.p.X.Title(), 0)
	x.Category = true
	b.c.Axes = []AxisParams{x, newAxis(b.yTitle(), valueTicks)}
	if len(b.c.Series) == 0 {
		b.c.Placeholder = msgNoCompat
		return
	}
	b.c.Categories = labels
	b.fitValueAxis(AxisY)
}

// commonPartEqual reports whether a and b are equal up to the length
// of the shorter one.
func commonPartEqual(a, b []string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
