// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"github.com/benchviz/benchplot/benchproc"
)

// boxes builds one box series per subset of records varying in X,
// with one box per record.
func (b *builder) boxes(idxs []int) {
	for _, sub := range benchproc.Group(b.rs, idxs, b.p.X) {
		s := Series{Name: sub.Name, Boxes: make([]BoxStats, 0, len(sub.Idxs))}
		for _, idx := range sub.Idxs {
			st := b.p.Y.Stats(b.rs.Records[idx])
			s.Boxes = append(s.Boxes, BoxStats{
				Label:    b.xName(idx),
				Min:      st.Min * b.factor,
				LowQuart: st.LowQuart * b.factor,
				Median:   st.Median * b.factor,
				UppQuart: st.UppQuart * b.factor,
				Max:      st.Max * b.factor,
			})
		}
		b.c.Series = append(b.c.Series, s)
	}

	x := newAxis(b.p.X.Title(), 0)
	x.Category = true
	b.c.Axes = []AxisParams{x, newAxis(b.yTitle(), valueTicks)}
	if len(b.c.Series) == 0 {
		b.c.Placeholder = msgNoCompat
		return
	}
	b.fitValueAxis(AxisY)
}
