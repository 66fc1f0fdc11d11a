// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot/palette/brewer"
)

// A Color is an opaque series color. The zero Color is unset.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// RGB returns the set Color with the given components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, true}
}

// ColorOf converts c to a Color, dropping transparency.
func ColorOf(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(nc.R, nc.G, nc.B)
}

// RGBA implements color.Color. An unset Color is transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.Valid {
		return 0, 0, 0, 0
	}
	return color.NRGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// String returns c as "#rrggbb", or "" for an unset Color.
func (c Color) String() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a color of the form "#rrggbb".
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// A Theme is a named series palette.
type Theme struct {
	Name string
	// Dark is set for themes drawn on a dark background.
	Dark bool

	palette string
	size    int
}

// Themes lists the available themes. The first one is the default.
var Themes = []Theme{
	{Name: "Light", palette: "Set1", size: 9},
	{Name: "Blue Cerulean", palette: "Paired", size: 12},
	{Name: "Dark", Dark: true, palette: "Dark2", size: 8},
	{Name: "Brown Sand", palette: "BrBG", size: 11},
	{Name: "Blue Ncs", palette: "RdYlBu", size: 11},
	{Name: "High Contrast", Dark: true, palette: "Accent", size: 8},
	{Name: "Blue Icy", palette: "Pastel1", size: 9},
	{Name: "Qt", palette: "Set3", size: 12},
}

// DefaultTheme is the theme of new charts.
var DefaultTheme = Themes[0]

// ThemeByName returns the theme called name.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Colors returns the palette of t.
func (t Theme) Colors() []Color {
	p, err := brewer.GetPalette(brewer.TypeAny, t.palette, t.size)
	if err != nil {
		// The theme table only names palettes that exist.
		panic(fmt.Sprintf("theme %s: %v", t.Name, err))
	}
	cs := p.Colors()
	out := make([]Color, len(cs))
	for i, c := range cs {
		out[i] = ColorOf(c)
	}
	return out
}

// Color returns the color t gives to the i'th series. Colors repeat
// after the end of the palette.
func (t Theme) Color(i int) Color {
	cs := t.Colors()
	return cs[i%len(cs)]
}

// A LegendAlign is the side of the chart the legend is drawn on.
type LegendAlign string

const (
	LegendTop    LegendAlign = "Top"
	LegendBottom LegendAlign = "Bottom"
	LegendLeft   LegendAlign = "Left"
	LegendRight  LegendAlign = "Right"
)

// ParseLegendAlign parses a legend alignment name.
func ParseLegendAlign(s string) (LegendAlign, error) {
	switch a := LegendAlign(s); a {
	case LegendTop, LegendBottom, LegendLeft, LegendRight:
		return a, nil
	}
	return "", fmt.Errorf("bad legend alignment %q", s)
}

// Legend is the display state of the chart legend.
type Legend struct {
	Visible  bool
	Align    LegendAlign
	FontSize int
}

func defaultLegend() Legend {
	return Legend{Visible: true, Align: LegendTop, FontSize: defaultFontSize}
}

// SeriesConfig is the user customization of one series, matched to
// the series by OldName.
type SeriesConfig struct {
	// OldName is the name the series was built with.
	OldName string
	// NewName is the name shown for the series.
	NewName string
	// OldColor is the color the theme gives to the series.
	OldColor Color
	// NewColor is the color shown for the series.
	NewColor Color
}
