// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads Google Benchmark JSON result files.
//
// A result file is turned into a ResultSet: an ordered list of
// Records, one per benchmark run, plus the metadata of the run
// context. Repetitions of the same run are folded into a single
// Record whose measurements carry a distribution summary, so that
// both scalar charts and box charts can be derived from it.
//
// All times are normalized to microseconds when read. Meta.TimeUnit
// records the unit used by the file so that charts can display values
// in the unit the user is used to.
//
// This package is designed to be used with the higher-level packages
// benchproc and benchchart.
package benchfmt

import (
	"github.com/benchviz/benchplot/benchmath"
)

// A ParamKind selects one of the two positional parameter lists of a
// benchmark name.
type ParamKind int

const (
	// Argument selects the "/"-separated arguments, as in the "8"
	// of "BM_Foo/8".
	Argument ParamKind = iota
	// Template selects the template parameters, as in the "int" of
	// "BM_Foo<int>".
	Template
)

func (k ParamKind) String() string {
	if k == Template {
		return "Template"
	}
	return "Argument"
}

// Stats is the distribution of one measurement over the repetitions
// of a benchmark run.
type Stats = benchmath.Summary

// A Record is a single benchmark result and all of its measurements.
//
// Records are immutable once read. Time measurements are in
// microseconds.
type Record struct {
	// Name is the full run name, such as "BM_Foo<int>/8/16". It
	// does not include any aggregate suffix like "_mean".
	Name string

	// Base is the benchmark function name, such as "BM_Foo".
	Base string

	// Templates and Arguments are the positional parameters
	// parsed from Name.
	Templates []string
	Arguments []string

	// Modifiers are the runner modifiers of Name, such as
	// "threads:4" or "real_time", in order.
	Modifiers []string

	// Label is the optional label reported by the benchmark.
	Label string

	// Threads is the number of threads the benchmark ran with.
	Threads int

	// Repetitions is the number of samples folded into this
	// Record.
	Repetitions int

	Iterations  Stats
	RealTime    Stats
	CPUTime     Stats
	BytesPerSec Stats
	ItemsPerSec Stats

	// HasBytes and HasItems report whether the benchmark reported
	// throughput counters.
	HasBytes, HasItems bool
}

// Params returns the parameter list of the given kind.
func (r *Record) Params(kind ParamKind) []string {
	if kind == Template {
		return r.Templates
	}
	return r.Arguments
}

// Param returns the parameter of the given kind at index i. It
// reports false if the record has no such parameter.
func (r *Record) Param(kind ParamKind, i int) (string, bool) {
	params := r.Params(kind)
	if i < 0 || i >= len(params) {
		return "", false
	}
	return params[i], true
}

// Meta is the metadata of a benchmark run context.
type Meta struct {
	// TimeUnit is the time unit used by the result file, such as
	// "ns". It defaults to "ns".
	TimeUnit string

	Date       string
	Host       string
	Executable string
	NumCPUs    int
	MHzPerCPU  float64
	BuildType  string
}

// A ResultSet is an ordered list of Records together with their
// context metadata.
type ResultSet struct {
	Records []*Record
	Meta    Meta

	// Warnings lists problems found while reading that did not
	// prevent reading, such as benchmarks that reported an error.
	Warnings []error
}

// Len returns the number of records in s.
func (s *ResultSet) Len() int {
	return len(s.Records)
}

// AllIndexes returns the indexes of every record of s, in order.
func (s *ResultSet) AllIndexes() []int {
	idxs := make([]int, len(s.Records))
	for i := range idxs {
		idxs[i] = i
	}
	return idxs
}

// ParamName returns the parameter of the given kind at slot of the
// record at index idx.
func (s *ResultSet) ParamName(kind ParamKind, idx, slot int) (string, bool) {
	if idx < 0 || idx >= len(s.Records) {
		return "", false
	}
	return s.Records[idx].Param(kind, slot)
}

// Append appends all records of o to s. The metadata of s is kept.
func (s *ResultSet) Append(o *ResultSet) {
	s.Records = append(s.Records, o.Records...)
	s.Warnings = append(s.Warnings, o.Warnings...)
}

// Overwrite replaces each record of s that has the same Name as a
// record of o, in place, and appends the records of o that match
// nothing in s.
func (s *ResultSet) Overwrite(o *ResultSet) {
	pos := make(map[string]int, len(s.Records))
	for i, rec := range s.Records {
		if _, ok := pos[rec.Name]; !ok {
			pos[rec.Name] = i
		}
	}
	for _, rec := range o.Records {
		if i, ok := pos[rec.Name]; ok {
			s.Records[i] = rec
			continue
		}
		pos[rec.Name] = len(s.Records)
		s.Records = append(s.Records, rec)
	}
	s.Warnings = append(s.Warnings, o.Warnings...)
}
