// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"github.com/benchviz/benchplot/benchproc"
)

// lines builds one line per subset of records varying in X.
func (b *builder) lines(idxs []int) {
	var xr benchproc.Resolver
	size, minSize := -1, b.p.Kind.MinSize()
	for _, sub := range benchproc.Group(b.rs, idxs, b.p.X) {
		n := len(sub.Idxs)
		if n < minSize {
			b.warn(&benchproc.UndersizeError{Name: sub.Name, Size: n, Min: minSize})
			continue
		}
		if size >= 0 && n != size {
			b.warn(&benchproc.AsymmetryError{Name: sub.Name, Size: n, FirstSize: size})
			continue
		}
		size = n

		xr.Reset()
		s := Series{Name: sub.Name, Points: make([]Point, 0, n)}
		for _, idx := range sub.Idxs {
			s.Points = append(s.Points, Point{xr.Resolve(b.xName(idx)), b.y(idx)})
		}
		b.c.Series = append(b.c.Series, s)
	}

	b.c.XLabels = xr.Labels()
	for _, err := range xr.Conflicts() {
		b.warn(err)
	}
	b.c.Axes = []AxisParams{
		newAxis(xr.Title(b.p.X), lineXTicks),
		newAxis(b.yTitle(), valueTicks),
	}
	if len(b.c.Series) == 0 {
		b.c.Placeholder = msgNoLines
		return
	}
	b.fitAxis(AxisX)
	b.fitValueAxis(AxisY)
}
