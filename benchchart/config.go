// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"

	"github.com/benchviz/benchplot/benchunit"
	"github.com/benchviz/benchplot/storage"
)

// settings returns the settings group of the chart kind.
func (p *Plotter) settings() storage.Store {
	return storage.Group(p.store, p.params.Kind.Group())
}

// LoadConfig applies the saved settings of the chart kind.
//
// With init set, as when the chart is first built, the time unit and
// axis titles keep the values derived from the results, and the
// value axis range of bar and box charts keeps its fitted value.
// Series settings apply to the series built with the same name.
func (p *Plotter) LoadConfig(init bool) {
	s := p.settings()

	if !init {
		if str, ok := s.String("timeUnit"); ok {
			if u, err := benchunit.ParseTimeUnit(str); err == nil {
				p.setTimeUnit(u)
			}
		}
	}
	if v, ok := s.Bool("autoReload"); ok {
		p.autoReload = v
	}
	if str, ok := s.String("theme"); ok {
		if t, ok := ThemeByName(str); ok {
			p.theme = t
		}
	}

	// Legend
	if v, ok := s.Bool("legend/visible"); ok {
		p.legend.Visible = v
	}
	if str, ok := s.String("legend/align"); ok {
		if a, err := ParseLegendAlign(str); err == nil {
			p.legend.Align = a
		}
	}
	if v, ok := s.Int("legend/fontSize"); ok && v > 0 {
		p.legend.FontSize = v
	}

	// Series
	n, _ := s.Int("series/size")
	for i := 1; i <= n; i++ {
		key := fmt.Sprintf("series/%d/", i)
		old, _ := s.String(key + "oldName")
		sc := p.seriesNamed(old)
		if sc == nil {
			continue
		}
		if str, ok := s.String(key + "newName"); ok && str != "" {
			sc.NewName = str
		}
		if str, ok := s.String(key + "newColor"); ok {
			if c, err := ParseColor(str); err == nil {
				sc.NewColor = c
			}
		}
	}

	// Axes
	for i := range p.chart.Axes {
		a := &p.chart.Axes[i]
		ax := storage.Group(s, "axis/"+axisNames[i])
		loadBool(ax, "visible", &a.Visible)
		loadBool(ax, "title", &a.TitleVisible)
		if !init {
			if str, ok := ax.String("titleText"); ok {
				a.Title = str
			}
		}
		loadSize(ax, "titleSize", &a.TitleSize)
		loadSize(ax, "labelSize", &a.LabelSize)
		if a.Category {
			continue
		}
		loadBool(ax, "log", &a.Log)
		if v, ok := ax.Int("logBase"); ok && v >= 2 {
			a.LogBase = v
		}
		if str, ok := ax.String("labelFormat"); ok && str != "" {
			a.LabelFormat = str
		}
		loadSize(ax, "ticks", &a.Ticks)
		if v, ok := ax.Int("mticks"); ok && v >= 0 {
			a.MinorTicks = v
		}
		if i == AxisY && (!init || p.params.Kind.lineOrSurface()) {
			min, okMin := ax.Float("min")
			max, okMax := ax.Float("max")
			if okMin && okMax && min < max {
				a.Min, a.Max = min, max
			}
		}
	}
}

func loadBool(s storage.Store, key string, dst *bool) {
	if v, ok := s.Bool(key); ok {
		*dst = v
	}
}

// loadSize loads a positive integer setting.
func loadSize(s storage.Store, key string, dst *int) {
	if v, ok := s.Int(key); ok && v > 0 {
		*dst = v
	}
}

func (p *Plotter) seriesNamed(old string) *SeriesConfig {
	for i := range p.series {
		if p.series[i].OldName == old {
			return &p.series[i]
		}
	}
	return nil
}

// SaveConfig saves the current settings of the chart and syncs the
// store.
func (p *Plotter) SaveConfig() error {
	s := p.settings()

	s.Set("timeUnit", string(p.unit))
	s.Set("autoReload", p.autoReload)
	s.Set("theme", p.theme.Name)
	s.Set("legend/visible", p.legend.Visible)
	s.Set("legend/align", string(p.legend.Align))
	s.Set("legend/fontSize", p.legend.FontSize)

	prev, _ := s.Int("series/size")
	for i, sc := range p.series {
		key := fmt.Sprintf("series/%d/", i+1)
		s.Set(key+"oldName", sc.OldName)
		s.Set(key+"newName", sc.NewName)
		s.Set(key+"newColor", sc.NewColor.String())
	}
	for i := len(p.series) + 1; i <= prev; i++ {
		key := fmt.Sprintf("series/%d/", i)
		s.Delete(key + "oldName")
		s.Delete(key + "newName")
		s.Delete(key + "newColor")
	}
	s.Set("series/size", len(p.series))

	for i, a := range p.chart.Axes {
		ax := storage.Group(s, "axis/"+axisNames[i])
		ax.Set("visible", a.Visible)
		ax.Set("title", a.TitleVisible)
		ax.Set("titleText", a.Title)
		ax.Set("titleSize", a.TitleSize)
		ax.Set("labelSize", a.LabelSize)
		if a.Category {
			continue
		}
		ax.Set("log", a.Log)
		ax.Set("logBase", a.LogBase)
		ax.Set("labelFormat", a.LabelFormat)
		ax.Set("ticks", a.Ticks)
		ax.Set("mticks", a.MinorTicks)
		if i == AxisY {
			ax.Set("min", a.Min)
			ax.Set("max", a.Max)
		}
	}
	return p.store.Sync()
}
