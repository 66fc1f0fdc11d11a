// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit manipulates benchmark units and formats numbers
// in those units.
//
// Times read from benchmark results are normalized to microseconds.
// A chart displays them in a TimeUnit chosen from the result metadata
// or by the user; Factor converts between the two.
package benchunit

import (
	"fmt"
	"strings"
)

// A TimeUnit is a display unit for benchmark times.
type TimeUnit string

const (
	Nanosecond  TimeUnit = "ns"
	Microsecond TimeUnit = "us"
	Millisecond TimeUnit = "ms"
	Second      TimeUnit = "s"
)

// TimeUnits lists the supported units from finest to coarsest.
var TimeUnits = []TimeUnit{Nanosecond, Microsecond, Millisecond, Second}

// ParseTimeUnit parses a unit name as written by benchmark runners.
// "µs" is accepted as an alias of "us".
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.TrimSpace(s) {
	case "ns":
		return Nanosecond, nil
	case "us", "µs":
		return Microsecond, nil
	case "ms":
		return Millisecond, nil
	case "s":
		return Second, nil
	}
	return "", fmt.Errorf("unknown time unit %q", s)
}

// Factor returns the multiplier converting a value in microseconds
// into u. Unknown units behave like microseconds.
func (u TimeUnit) Factor() float64 {
	switch u {
	case Nanosecond:
		return 1000
	case Millisecond:
		return 0.001
	case Second:
		return 1e-6
	}
	return 1
}

// ToMicro converts v, expressed in u, to microseconds.
func (u TimeUnit) ToMicro(v float64) float64 {
	return v / u.Factor()
}

// FromMicro converts v from microseconds to u.
func (u TimeUnit) FromMicro(v float64) float64 {
	return v * u.Factor()
}

// Suffix returns the parenthesized unit used at the end of axis
// titles, such as "(ns)".
func (u TimeUnit) Suffix() string {
	return "(" + string(u) + ")"
}

// A Class specifies what class of unit prefixes are in use.
type Class int

const (
	// Decimal indicates values of a given unit should be scaled
	// by powers of 1000, using SI prefixes such as "k" and "M".
	Decimal Class = iota
	// Binary indicates values of a given unit should be scaled by
	// powers of 1024, using IEC prefixes such as "Ki" and "Mi".
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ClassOf returns the Class of unit. If unit measures bytes in the
// numerator, as in "B/s" or "bytes/s", this is Binary. Otherwise, it
// is Decimal.
func ClassOf(unit string) Class {
	num := unit
	if i := strings.IndexByte(unit, '/'); i >= 0 {
		num = unit[:i]
	}
	switch strings.TrimSpace(num) {
	case "B", "bytes", "MB":
		return Binary
	}
	return Decimal
}
