// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchproc

import (
	"strconv"
	"strings"

	"github.com/benchviz/benchplot/benchfmt"
)

// A Subset is a named, ordered list of record indexes.
type Subset struct {
	Name string
	Idxs []int
}

// Group partitions the records of rs at idxs by their identity with
// the slot parameter erased. Two records are in the same Subset if and
// only if they have the same base name and all of their arguments and
// template parameters other than slot are equal, and they were run
// with the same runner modifiers. Records without the slot are
// excluded.
//
// Subsets are in the order their first record appears in idxs, and
// indexes within a Subset keep the order of idxs. The Name of each
// Subset is the record name with the slot parameter removed, as in
// "BM_Foo" for "BM_Foo/8" or "BM_Foo/threads:4" for
// "BM_Foo/8/threads:4".
func Group(rs *benchfmt.ResultSet, idxs []int, slot Slot) []Subset {
	return partition(rs, idxs, func(rec *benchfmt.Record) (string, string, bool) {
		return identity(rec, slot)
	})
}

// SegmentParam partitions the records of rs at idxs by the value of
// slot alone. Each Subset is named after the value. Records without
// the slot are excluded.
func SegmentParam(rs *benchfmt.ResultSet, idxs []int, slot Slot) []Subset {
	return partition(rs, idxs, func(rec *benchfmt.Record) (string, string, bool) {
		v, ok := slot.Value(rec)
		return v, v, ok
	})
}

// Segment2DNames partitions the records of rs at idxs by their
// identity with both the x and z parameters erased. Records lacking
// either slot are excluded.
func Segment2DNames(rs *benchfmt.ResultSet, idxs []int, x, z Slot) []Subset {
	return partition(rs, idxs, func(rec *benchfmt.Record) (string, string, bool) {
		return identity(rec, x, z)
	})
}

// partition groups idxs by the key returned by keyOf, naming each
// group after the name keyOf returns for its first record.
func partition(rs *benchfmt.ResultSet, idxs []int, keyOf func(*benchfmt.Record) (key, name string, ok bool)) []Subset {
	var subsets []Subset
	pos := make(map[string]int)
	for _, idx := range idxs {
		if idx < 0 || idx >= len(rs.Records) {
			continue
		}
		key, name, ok := keyOf(rs.Records[idx])
		if !ok {
			continue
		}
		i, ok := pos[key]
		if !ok {
			i = len(subsets)
			pos[key] = i
			subsets = append(subsets, Subset{Name: name})
		}
		subsets[i].Idxs = append(subsets[i].Idxs, idx)
	}
	return subsets
}

// identity returns the identity key and display name of rec with the
// parameters at slots erased. It reports false if rec lacks any of the
// slots.
func identity(rec *benchfmt.Record, slots ...Slot) (key, name string, ok bool) {
	erased := func(kind ParamKind, i int) bool {
		for _, s := range slots {
			if s.Kind == kind && s.Index == i {
				return true
			}
		}
		return false
	}
	for _, s := range slots {
		if _, ok := s.Value(rec); !ok {
			return "", "", false
		}
	}

	var tmpls, args []string
	for i, t := range rec.Templates {
		if !erased(Template, i) {
			tmpls = append(tmpls, t)
		}
	}
	for i, a := range rec.Arguments {
		if !erased(Argument, i) {
			args = append(args, a)
		}
	}

	// The key keeps the arity so that names that only differ by
	// separators inside parameters stay apart.
	var kb strings.Builder
	kb.WriteString(rec.Base)
	kb.WriteString("\x00")
	kb.WriteString(strconv.Itoa(len(rec.Templates)))
	for _, t := range tmpls {
		kb.WriteString("\x00")
		kb.WriteString(t)
	}
	kb.WriteString("\x01")
	kb.WriteString(strconv.Itoa(len(rec.Arguments)))
	for _, a := range args {
		kb.WriteString("\x00")
		kb.WriteString(a)
	}
	kb.WriteString("\x02")
	for _, m := range rec.Modifiers {
		kb.WriteString("\x00")
		kb.WriteString(m)
	}

	var nb strings.Builder
	nb.WriteString(rec.Base)
	if len(tmpls) > 0 {
		nb.WriteString("<")
		nb.WriteString(strings.Join(tmpls, ", "))
		nb.WriteString(">")
	}
	for _, a := range append(args, rec.Modifiers...) {
		nb.WriteString("/")
		nb.WriteString(a)
	}
	return kb.String(), nb.String(), true
}
