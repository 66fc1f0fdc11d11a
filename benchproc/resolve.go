// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Resolver maps the parameter values of one chart axis to plot
// coordinates.
//
// Numeric values map to themselves. Values of the form "key=value" or
// "key:value" with a numeric value map to that value, and the first
// such key becomes the axis name (see Name). Any other value turns the
// axis categorical: that value and every value resolved after it,
// numeric or not, map to an ordinal counter. The counter restarts at 0
// on Reset, so every series of a categorical axis is numbered the same
// way. Each coordinate is labeled with the first value resolved to it;
// series that put another value there are reported by Conflicts.
//
// A Resolver must be shared by all series plotted on the same axis.
// The zero Resolver is ready to use.
type Resolver struct {
	categorical bool
	fallback    float64
	name        string

	labels    []Label
	labelAt   map[float64]int
	conflicts []error
}

// A Label is the value shown for a coordinate of a categorical axis.
type Label struct {
	Value float64
	Name  string
}

// Resolve returns the coordinate of the parameter value name.
func (r *Resolver) Resolve(name string) float64 {
	if !r.categorical {
		if v, ok := parseNum(name); ok {
			return v
		}
		if key, v, ok := keyValue(name); ok {
			if r.name == "" {
				r.name = key
			}
			return v
		}
		r.categorical = true
		r.name = ""
	}
	v := r.fallback
	r.fallback++
	if r.labelAt == nil {
		r.labelAt = make(map[float64]int)
	}
	i, ok := r.labelAt[v]
	switch {
	case !ok:
		r.labelAt[v] = len(r.labels)
		r.labels = append(r.labels, Label{v, name})
	case r.labels[i].Name != name && !r.conflicted(v):
		r.conflicts = append(r.conflicts, &LabelConflictError{Value: v, Name: r.labels[i].Name, Other: name})
	}
	return v
}

func (r *Resolver) conflicted(v float64) bool {
	for _, err := range r.conflicts {
		if err.(*LabelConflictError).Value == v {
			return true
		}
	}
	return false
}

// A LabelConflictError reports a categorical coordinate that two
// series resolve from different values. The axis shows Name.
type LabelConflictError struct {
	Value       float64
	Name, Other string
}

func (e *LabelConflictError) Error() string {
	return fmt.Sprintf("categorical coordinate %g is both %q and %q, labeled %q", e.Value, e.Name, e.Other, e.Name)
}

// keyValue splits a "key=value" or "key:value" name with a numeric
// value.
func keyValue(name string) (key string, val float64, ok bool) {
	i := strings.IndexAny(name, "=:")
	if i <= 0 {
		return "", 0, false
	}
	v, ok := parseNum(name[i+1:])
	if !ok {
		return "", 0, false
	}
	return strings.TrimSpace(name[:i]), v, true
}

// parseNum parses a finite number. Names such as "inf" or "NaN" are
// not numbers.
func parseNum(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Reset restarts the ordinal counter. Call it before resolving the
// values of each series.
func (r *Resolver) Reset() {
	r.fallback = 0
}

// Categorical reports whether the axis has turned categorical.
func (r *Resolver) Categorical() bool {
	return r.categorical
}

// Name returns the axis name derived from "key=value" parameter
// values, or "".
func (r *Resolver) Name() string {
	return r.name
}

// Labels returns the names shown at each ordinal coordinate of a
// categorical axis, in the order they were first resolved.
func (r *Resolver) Labels() []Label {
	return r.labels
}

// Conflicts returns a *LabelConflictError for each coordinate that
// was resolved from more than one value, in the order they were found.
func (r *Resolver) Conflicts() []error {
	return r.conflicts
}

// Title returns the title of an axis plotting slot. Template axes
// prefer the name derived from their values.
func (r *Resolver) Title(slot Slot) string {
	if slot.Kind == Template && r.name != "" {
		return r.name
	}
	return slot.Title()
}
