// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"fmt"

	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/watch"
)

// A ReloadOutcome says how a reload changed the chart.
type ReloadOutcome int

const (
	// NotReloaded means the chart is unchanged.
	NotReloaded ReloadOutcome = iota
	// InPlace means the chart kept its shape and customizations;
	// only its values changed.
	InPlace
	// Rebuilt means the chart was built again from the new results
	// and the saved settings.
	Rebuilt
)

func (o ReloadOutcome) String() string {
	switch o {
	case InPlace:
		return "in place"
	case Rebuilt:
		return "rebuilt"
	}
	return "not reloaded"
}

// A ReloadErrorKind classifies reload failures.
type ReloadErrorKind int

const (
	// ReloadParse means a result file could not be read.
	ReloadParse ReloadErrorKind = iota
	// ReloadMismatch means the new results do not fit a chart of a
	// manual selection of records.
	ReloadMismatch
)

// A ReloadError is a failed reload. The chart is left unchanged.
type ReloadError struct {
	Kind ReloadErrorKind
	Msg  string
	Err  error
}

func (e *ReloadError) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *ReloadError) Unwrap() error {
	return e.Err
}

// Reload reads the result files again and updates the chart.
//
// If the new results have the same shape as the chart (the same
// series, in order, with the same number of points), only the values
// are updated and every customization is kept. Otherwise, a chart of
// every record is rebuilt from the new results, after saving its
// settings so that they apply to the rebuilt chart. A chart of a
// manual selection of records cannot be rebuilt: Reload returns a
// *ReloadError of kind ReloadMismatch and leaves it unchanged.
func (p *Plotter) Reload() (ReloadOutcome, error) {
	if p.loader == nil {
		return NotReloaded, errors.New("no result files to reload")
	}
	rs, err := p.loader.Load()
	if err != nil {
		return NotReloaded, &ReloadError{Kind: ReloadParse, Err: err}
	}

	idxs := p.idxs
	var msg string
	if rs.Len() != p.rs.Len() {
		msg = "Number of series/points is different"
		if p.all {
			idxs = rs.AllIndexes()
		}
	}

	var next *Chart
	if msg == "" {
		next = build(rs, idxs, p.params, p.unit)
		msg = p.compatible(next)
	}

	switch {
	case msg == "":
		p.update(next)
		p.rs = rs
		p.lastReload = p.now()
		return InPlace, nil
	case p.all:
		if err := p.SaveConfig(); err != nil {
			return NotReloaded, fmt.Errorf("saving settings before rebuild: %w", err)
		}
		p.rs, p.idxs = rs, idxs
		p.setup(false)
		p.lastReload = p.now()
		return Rebuilt, nil
	}
	return NotReloaded, &ReloadError{Kind: ReloadMismatch, Msg: msg}
}

// compatible returns why next cannot replace the values of the
// current chart, or "" if it can.
func (p *Plotter) compatible(next *Chart) string {
	cur := p.chart
	if next.Empty() {
		return msgNoCompat
	}
	if p.params.Kind == Surface && p.params.Z == nil {
		if len(cur.Series) != 1 {
			return "No single series originally"
		}
		if len(next.Series[0].Rows) != len(cur.Series[0].Rows) {
			return "Number of single series rows is different"
		}
		return sameRows(next.Series[0], cur.Series[0])
	}

	if len(next.Series) != len(cur.Series) {
		return "Number of series is different"
	}
	for i := range next.Series {
		ns, cs := &next.Series[i], &cur.Series[i]
		if ns.Name != cs.Name {
			return "Series has different name"
		}
		if ns.Len() == cs.Len() {
			if p.params.Kind == Surface {
				if msg := sameRows(*ns, *cs); msg != "" {
					return msg
				}
			}
			continue
		}
		switch p.params.Kind {
		case Bar, HBar:
			return "Number of series bars is different"
		case Surface:
			return "Number of series rows is different"
		}
		return "Series has different number of points"
	}
	return ""
}

func sameRows(a, b Series) string {
	for i := range a.Rows {
		if len(a.Rows[i]) != len(b.Rows[i]) {
			return "Number of series columns is different"
		}
	}
	return ""
}

// update copies the values of next, a chart of the same shape, into
// the current chart.
func (p *Plotter) update(next *Chart) {
	cur := p.chart
	for i := range cur.Series {
		ns, cs := &next.Series[i], &cur.Series[i]
		cs.Points, cs.Bars, cs.Boxes, cs.Rows = ns.Points, ns.Bars, ns.Boxes, ns.Rows
	}
	cur.Categories = next.Categories
	cur.XLabels, cur.ZLabels = next.XLabels, next.ZLabels
	cur.Warnings = next.Warnings
}

// OnFileChanged is called when the result file at path changes. If
// auto-reload is on and the file is ready to be read, it reloads the
// chart.
func (p *Plotter) OnFileChanged(path string) (ReloadOutcome, error) {
	if !p.autoReload {
		return NotReloaded, nil
	}
	if err := watch.Ready(path); err != nil {
		return NotReloaded, fmt.Errorf("unable to auto-reload file %s: %w", path, err)
	}
	return p.Reload()
}

// compile-time check
var _ Loader = (*benchfmt.Source)(nil)
