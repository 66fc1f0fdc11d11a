// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"time"

	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/benchunit"
	"github.com/benchviz/benchplot/storage"
)

// A Loader reads the result files of a chart. *benchfmt.Source is a
// Loader.
type Loader interface {
	Load() (*benchfmt.ResultSet, error)
}

// Options configures a Plotter.
type Options struct {
	// Loader reloads the results. If nil, Reload fails.
	Loader Loader

	// Store holds the chart settings. If nil, settings are kept in
	// memory only.
	Store storage.Store

	// Listener, if set, is called after each command run with echo
	// set.
	Listener func(Event)

	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time
}

// A Plotter owns one chart and the user customizations of it.
//
// A Plotter is not safe for concurrent use. Commands, reloads and
// file change notifications must be delivered one at a time.
type Plotter struct {
	params PlotParams
	rs     *benchfmt.ResultSet
	idxs   []int
	// all is set if idxs is every record of rs.
	all bool

	loader   Loader
	store    storage.Store
	listener func(Event)
	now      func() time.Time

	chart      *Chart
	series     []SeriesConfig
	theme      Theme
	legend     Legend
	unit       benchunit.TimeUnit
	autoReload bool
	lastReload time.Time
}

// NewPlotter builds the chart of the records of rs at idxs and applies
// the saved settings of its kind. A nil idxs selects every record;
// such a chart is rebuilt rather than rejected when a reload changes
// its shape.
func NewPlotter(rs *benchfmt.ResultSet, idxs []int, p PlotParams, opts Options) *Plotter {
	pl := &Plotter{
		params:   p,
		rs:       rs,
		idxs:     idxs,
		loader:   opts.Loader,
		store:    opts.Store,
		listener: opts.Listener,
		now:      opts.Now,
	}
	if idxs == nil {
		pl.all = true
		pl.idxs = rs.AllIndexes()
	}
	if pl.store == nil {
		pl.store = storage.NewMemory()
	}
	if pl.now == nil {
		pl.now = time.Now
	}
	pl.setup(true)
	return pl
}

// setup builds the chart from scratch with default options, then
// applies the saved settings.
func (p *Plotter) setup(init bool) {
	p.unit = fileUnit(p.rs)
	p.chart = build(p.rs, p.idxs, p.params, p.unit)
	p.theme = DefaultTheme
	p.legend = defaultLegend()
	p.series = make([]SeriesConfig, len(p.chart.Series))
	for i, s := range p.chart.Series {
		p.series[i] = SeriesConfig{OldName: s.Name, NewName: s.Name}
	}

	p.LoadConfig(init)

	for i := range p.series {
		sc := &p.series[i]
		sc.OldColor = p.theme.Color(i)
		if !sc.NewColor.Valid {
			sc.NewColor = sc.OldColor
		}
	}
}

// Params returns the parameters the chart was built with.
func (p *Plotter) Params() PlotParams { return p.params }

// Chart returns the current chart. The chart is owned by p and
// changes with commands and reloads; callers must not modify it.
func (p *Plotter) Chart() *Chart { return p.chart }

// Results returns the results the chart was last built or updated
// from.
func (p *Plotter) Results() *benchfmt.ResultSet { return p.rs }

// SeriesConfigs returns the customization of each series, in the
// order of Chart().Series.
func (p *Plotter) SeriesConfigs() []SeriesConfig {
	return append([]SeriesConfig(nil), p.series...)
}

func (p *Plotter) Theme() Theme                 { return p.theme }
func (p *Plotter) Legend() Legend               { return p.legend }
func (p *Plotter) TimeUnit() benchunit.TimeUnit { return p.unit }
func (p *Plotter) AutoReload() bool             { return p.autoReload }

// LastReload returns the time of the last successful reload, or the
// zero time if the chart was never reloaded.
func (p *Plotter) LastReload() time.Time { return p.lastReload }
