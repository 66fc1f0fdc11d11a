// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"github.com/benchviz/benchplot/benchproc"
)

// surfaceRows builds a single surface with one row per subset of
// records varying in X. Rows are numbered in order along Z. Either
// every subset fits or no surface is built.
func (b *builder) surfaceRows(idxs []int) {
	var xr benchproc.Resolver
	subsets := benchproc.Group(b.rs, idxs, b.p.X)
	if err := benchproc.CheckSubsets(subsets, Surface.MinSize()); err != nil {
		b.warn(fmt.Errorf("cannot trace surface: %w", err))
	} else if len(subsets) > 0 {
		s := Series{Rows: make([][]Point3, 0, len(subsets))}
		for z, sub := range subsets {
			xr.Reset()
			row := make([]Point3, 0, len(sub.Idxs))
			for _, idx := range sub.Idxs {
				row = append(row, Point3{xr.Resolve(b.xName(idx)), b.y(idx), float64(z)})
			}
			s.Rows = append(s.Rows, row)
		}
		b.c.Series = append(b.c.Series, s)
	}
	b.surfaceAxes(&xr, nil)
}

// surfaces builds one surface per group of records varying in both X
// and Z, with one row per Z value. Surfaces whose rows do not all
// have the same number of X values, or fewer than two, are left out.
func (b *builder) surfaces(idxs []int) {
	var xr, zr benchproc.Resolver
	for _, surf := range benchproc.Segment3D(b.rs, idxs, b.p.X, *b.p.Z) {
		if err := benchproc.CheckSubsets(surf.Subsets(), Surface.MinSize()); err != nil {
			b.warn(fmt.Errorf("cannot trace surface for %s: %w", surf.Name, err))
			continue
		}
		zr.Reset()
		s := Series{Name: surf.Name, Rows: make([][]Point3, 0, len(surf.Rows))}
		for _, r := range surf.Rows {
			z := zr.Resolve(r.ZName)
			xr.Reset()
			row := make([]Point3, 0, len(r.Idxs))
			for _, idx := range r.Idxs {
				row = append(row, Point3{xr.Resolve(b.xName(idx)), b.y(idx), z})
			}
			s.Rows = append(s.Rows, row)
		}
		b.c.Series = append(b.c.Series, s)
	}
	b.surfaceAxes(&xr, &zr)
}

func (b *builder) surfaceAxes(xr, zr *benchproc.Resolver) {
	z := newAxis("", surfaceXTicks)
	if zr != nil {
		z.Title = zr.Title(*b.p.Z)
		b.c.ZLabels = zr.Labels()
		for _, err := range zr.Conflicts() {
			b.warn(err)
		}
	}
	b.c.XLabels = xr.Labels()
	for _, err := range xr.Conflicts() {
		b.warn(err)
	}
	b.c.Axes = []AxisParams{
		newAxis(xr.Title(b.p.X), surfaceXTicks),
		newAxis(b.yTitle(), valueTicks),
		z,
	}
	for i := range b.c.Axes {
		b.c.Axes[i].MinorTicks = minorTicks(Surface)
	}
	if len(b.c.Series) == 0 || len(b.c.Series[0].Rows) == 0 {
		b.c.Series = nil
		b.c.Placeholder = msgNoCompat
		return
	}
	b.fitAxis(AxisX)
	b.fitValueAxis(AxisY)
	b.fitAxis(AxisZ)
}
