// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"strings"

	"github.com/benchviz/benchplot/benchunit"
)

// An Event reports a change made by a Plotter command.
type Event struct {
	// Op is the name of the command, such as "SetTheme".
	Op string
	// Axis is the axis changed by an axis command, or -1.
	Axis int
}

// Commands change the display state of the chart. Each takes an echo
// flag: with echo set, the Options.Listener is told about the change
// once it is made. Bulk updates driven by the listener itself pass
// false.

func (p *Plotter) emit(echo bool, op string, axis int) {
	if echo && p.listener != nil {
		p.listener(Event{Op: op, Axis: axis})
	}
}

// SetTheme switches to the theme called name. Series whose color
// was not customized take the color of the new theme.
func (p *Plotter) SetTheme(name string, echo bool) error {
	t, ok := ThemeByName(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	p.theme = t
	for i := range p.series {
		sc := &p.series[i]
		prev := sc.OldColor
		sc.OldColor = t.Color(i)
		if sc.NewColor == prev {
			sc.NewColor = sc.OldColor
		}
	}
	p.emit(echo, "SetTheme", -1)
	return nil
}

// SetLegend sets the legend display state.
func (p *Plotter) SetLegend(l Legend, echo bool) error {
	if _, err := ParseLegendAlign(string(l.Align)); err != nil {
		return err
	}
	if l.FontSize <= 0 {
		return fmt.Errorf("bad legend font size %d", l.FontSize)
	}
	p.legend = l
	p.emit(echo, "SetLegend", -1)
	return nil
}

// EditSeries renames and recolors the i'th series. An empty name or
// an unset color restores the original one.
func (p *Plotter) EditSeries(i int, name string, c Color, echo bool) error {
	if i < 0 || i >= len(p.series) {
		return fmt.Errorf("no series %d", i)
	}
	sc := &p.series[i]
	if name == "" {
		name = sc.OldName
	}
	if !c.Valid {
		c = sc.OldColor
	}
	sc.NewName, sc.NewColor = name, c
	p.emit(echo, "EditSeries", -1)
	return nil
}

// SetTimeUnit shows time-based values in u. The values, the value
// axis range and the unit suffix of its title are converted.
func (p *Plotter) SetTimeUnit(u benchunit.TimeUnit, echo bool) error {
	if _, err := benchunit.ParseTimeUnit(string(u)); err != nil {
		return err
	}
	p.setTimeUnit(u)
	p.emit(echo, "SetTimeUnit", AxisY)
	return nil
}

func (p *Plotter) setTimeUnit(u benchunit.TimeUnit) {
	old := p.unit
	p.unit = u
	if u == old || !p.params.Y.IsTimeBased() {
		return
	}
	f := u.Factor() / old.Factor()
	p.chart.scaleY(f)
	a := &p.chart.Axes[AxisY]
	if strings.HasSuffix(a.Title, old.Suffix()) {
		a.Title = strings.TrimSuffix(a.Title, old.Suffix()) + u.Suffix()
	}
	a.Min *= f
	a.Max *= f
}

// axis returns the i'th axis of the chart. With value set, it must
// be a value axis.
func (p *Plotter) axis(i int, value bool) (*AxisParams, error) {
	if i < 0 || i >= len(p.chart.Axes) {
		return nil, fmt.Errorf("no axis %d", i)
	}
	a := &p.chart.Axes[i]
	if value && a.Category {
		return nil, fmt.Errorf("%s axis shows categories", axisNames[i])
	}
	return a, nil
}

// setAxis applies set to the i'th axis.
func (p *Plotter) setAxis(op string, i int, value, echo bool, set func(a *AxisParams) error) error {
	a, err := p.axis(i, value)
	if err != nil {
		return err
	}
	if err := set(a); err != nil {
		return err
	}
	p.emit(echo, op, i)
	return nil
}

func (p *Plotter) SetAxisVisible(i int, v, echo bool) error {
	return p.setAxis("SetAxisVisible", i, false, echo, func(a *AxisParams) error {
		a.Visible = v
		return nil
	})
}

func (p *Plotter) SetAxisTitleVisible(i int, v, echo bool) error {
	return p.setAxis("SetAxisTitleVisible", i, false, echo, func(a *AxisParams) error {
		a.TitleVisible = v
		return nil
	})
}

func (p *Plotter) SetAxisTitle(i int, title string, echo bool) error {
	return p.setAxis("SetAxisTitle", i, false, echo, func(a *AxisParams) error {
		a.Title = title
		return nil
	})
}

func (p *Plotter) SetAxisTitleSize(i, size int, echo bool) error {
	return p.setAxis("SetAxisTitleSize", i, false, echo, func(a *AxisParams) error {
		if size <= 0 {
			return fmt.Errorf("bad title size %d", size)
		}
		a.TitleSize = size
		return nil
	})
}

func (p *Plotter) SetAxisLabelSize(i, size int, echo bool) error {
	return p.setAxis("SetAxisLabelSize", i, false, echo, func(a *AxisParams) error {
		if size <= 0 {
			return fmt.Errorf("bad label size %d", size)
		}
		a.LabelSize = size
		return nil
	})
}

// SetAxisLog switches the i'th axis between linear and logarithmic
// scale.
func (p *Plotter) SetAxisLog(i int, log, echo bool) error {
	return p.setAxis("SetAxisLog", i, true, echo, func(a *AxisParams) error {
		a.Log = log
		return nil
	})
}

func (p *Plotter) SetAxisLogBase(i, base int, echo bool) error {
	return p.setAxis("SetAxisLogBase", i, true, echo, func(a *AxisParams) error {
		if base < 2 {
			return fmt.Errorf("bad log base %d", base)
		}
		a.LogBase = base
		return nil
	})
}

// SetAxisFormat sets the printf format of the tick labels of the
// i'th axis.
func (p *Plotter) SetAxisFormat(i int, format string, echo bool) error {
	return p.setAxis("SetAxisFormat", i, true, echo, func(a *AxisParams) error {
		if format == "" || strings.Contains(fmt.Sprintf(format, 1.0), "%!") {
			return fmt.Errorf("bad label format %q", format)
		}
		a.LabelFormat = format
		return nil
	})
}

func (p *Plotter) SetAxisRange(i int, min, max float64, echo bool) error {
	return p.setAxis("SetAxisRange", i, true, echo, func(a *AxisParams) error {
		if !(min < max) {
			return fmt.Errorf("bad axis range [%g, %g]", min, max)
		}
		a.Min, a.Max = min, max
		return nil
	})
}

func (p *Plotter) SetAxisTicks(i, n int, echo bool) error {
	return p.setAxis("SetAxisTicks", i, true, echo, func(a *AxisParams) error {
		if n < 2 {
			return fmt.Errorf("bad tick count %d", n)
		}
		a.Ticks = n
		return nil
	})
}

func (p *Plotter) SetAxisMinorTicks(i, n int, echo bool) error {
	return p.setAxis("SetAxisMinorTicks", i, true, echo, func(a *AxisParams) error {
		if n < 0 {
			return fmt.Errorf("bad minor tick count %d", n)
		}
		a.MinorTicks = n
		return nil
	})
}

// SetAutoReload turns reloading on file changes on or off.
func (p *Plotter) SetAutoReload(v, echo bool) {
	p.autoReload = v
	p.emit(echo, "SetAutoReload", -1)
}
