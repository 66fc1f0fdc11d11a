// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "Ki", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, with a Decimal scale for 123456789,
// Format returns "123M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

type prefix struct {
	factor float64
	name   string
}

// Prefixes in descending order of factor.
var (
	siPrefixes = []prefix{
		{1e12, "T"}, {1e9, "G"}, {1e6, "M"}, {1e3, "k"}, {1, ""},
		{1e-3, "m"}, {1e-6, "µ"}, {1e-9, "n"},
	}
	iecPrefixes = []prefix{
		{1 << 40, "Ti"}, {1 << 30, "Gi"}, {1 << 20, "Mi"}, {1 << 10, "Ki"}, {1, ""},
	}
)

// maxPrec bounds the digits printed after the decimal point.
const maxPrec = 10

// CommonScale returns a common Scaler to apply to all values in vals,
// such as the tick labels of one axis. This scale shows at least three
// significant digits for every value.
func CommonScale(vals []float64, cls Class) Scaler {
	// The common scale is determined by the non-zero value
	// closest to zero.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && !math.IsInf(v, 0) && !math.IsNaN(v) && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	prefixes := siPrefixes
	if cls == Binary {
		prefixes = iecPrefixes
	}
	p := prefixes[len(prefixes)-1]
	for _, cand := range prefixes {
		if min >= cand.factor {
			p = cand
			break
		}
	}

	// Three significant digits of the scaled value.
	prec := 2 - intDigits(min/p.factor)
	if prec < 0 {
		prec = 0
	}
	if prec > maxPrec {
		prec = maxPrec
	}
	return Scaler{prec, p.factor, p.name}
}

// intDigits returns floor(log10(x)) for x > 0, computed by repeated
// division so exact powers of ten are not subject to rounding.
func intDigits(x float64) int {
	d := 0
	for ; x >= 10; x /= 10 {
		d++
	}
	for ; x < 1 && d > -maxPrec; x *= 10 {
		d--
	}
	return d
}

// NiceRange widens [min, max] to round numbers so that the range
// divides into ticks-1 intervals of a "nice" step (1, 2 or 5 times a
// power of ten). It returns the input unchanged when it is degenerate.
func NiceRange(min, max float64, ticks int) (lo, hi float64) {
	if ticks < 2 {
		ticks = 2
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return min, max
	}
	if min == max {
		if min == 0 {
			return 0, 1
		}
		d := math.Abs(min) / 2
		min, max = min-d, max+d
	}
	if min > max {
		min, max = max, min
	}
	step := niceNum((max-min)/float64(ticks-1))
	return math.Floor(min/step) * step, math.Ceil(max/step) * step
}

// niceNum returns a nice number approximately equal to x.
func niceNum(x float64) float64 {
	exp := math.Pow(10, float64(intDigits(x)))
	switch f := x / exp; {
	case f < 1.5:
		return exp
	case f < 3:
		return 2 * exp
	case f < 7:
		return 5 * exp
	}
	return 10 * exp
}
