// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benchviz/benchplot/benchfmt"
)

// A ParamKind selects arguments or template parameters.
type ParamKind = benchfmt.ParamKind

const (
	Argument = benchfmt.Argument
	Template = benchfmt.Template
)

// A Slot names one positional parameter of a benchmark name.
type Slot struct {
	Kind  ParamKind
	Index int
}

// Arg returns the slot of the i'th (0-based) argument.
func Arg(i int) Slot {
	return Slot{Argument, i}
}

// Tmpl returns the slot of the i'th (0-based) template parameter.
func Tmpl(i int) Slot {
	return Slot{Template, i}
}

// Title returns the default axis title of s, such as "Argument 1".
// Indexes are shown 1-based.
func (s Slot) Title() string {
	return s.Kind.String() + " " + strconv.Itoa(s.Index+1)
}

// String returns s in the syntax accepted by ParseSlot.
func (s Slot) String() string {
	if s.Kind == Template {
		return "tmpl:" + strconv.Itoa(s.Index)
	}
	return "arg:" + strconv.Itoa(s.Index)
}

// Value returns the value of slot s in rec. It reports false if rec
// has no such parameter.
func (s Slot) Value(rec *benchfmt.Record) (string, bool) {
	return rec.Param(s.Kind, s.Index)
}

// ParseSlot parses a slot of the form "arg:N" or "tmpl:N", with N a
// 0-based index. "argument" and "template" are accepted as well.
func ParseSlot(str string) (Slot, error) {
	kind, idx, ok := strings.Cut(str, ":")
	if !ok {
		return Slot{}, fmt.Errorf("bad slot %q: want arg:N or tmpl:N", str)
	}
	var s Slot
	switch kind {
	case "arg", "argument":
		s.Kind = Argument
	case "tmpl", "template":
		s.Kind = Template
	default:
		return Slot{}, fmt.Errorf("bad slot %q: unknown parameter kind %q", str, kind)
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return Slot{}, fmt.Errorf("bad slot %q: bad index %q", str, idx)
	}
	s.Index = n
	return s, nil
}
