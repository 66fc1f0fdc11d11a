// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benchviz/benchplot/benchmath"
	"github.com/benchviz/benchplot/benchunit"
)

// A SyntaxError represents a malformed benchmark results file.
type SyntaxError struct {
	FileName string
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", s.FileName, s.Msg)
}

// A RunError is a warning for a benchmark entry that reported an
// error and was skipped.
type RunError struct {
	Name string
	Msg  string
}

func (e *RunError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("benchmark %s reported an error", e.Name)
	}
	return fmt.Sprintf("benchmark %s reported an error: %s", e.Name, e.Msg)
}

// ErrNoBenchmarks is returned by Read for an input that holds no usable
// benchmark entry.
var ErrNoBenchmarks = errors.New("no benchmarks found")

type jsonFile struct {
	Context    jsonContext     `json:"context"`
	Benchmarks []jsonBenchmark `json:"benchmarks"`
}

type jsonContext struct {
	Date       string  `json:"date"`
	Host       string  `json:"host_name"`
	Executable string  `json:"executable"`
	NumCPUs    int     `json:"num_cpus"`
	MHzPerCPU  float64 `json:"mhz_per_cpu"`
	BuildType  string  `json:"library_build_type"`
}

type jsonBenchmark struct {
	Name           string   `json:"name"`
	RunName        string   `json:"run_name"`
	RunType        string   `json:"run_type"`
	AggregateName  string   `json:"aggregate_name"`
	Threads        int      `json:"threads"`
	Iterations     float64  `json:"iterations"`
	RealTime       float64  `json:"real_time"`
	CPUTime        float64  `json:"cpu_time"`
	TimeUnit       string   `json:"time_unit"`
	BytesPerSecond *float64 `json:"bytes_per_second"`
	ItemsPerSecond *float64 `json:"items_per_second"`
	Label          string   `json:"label"`
	ErrorOccurred  bool     `json:"error_occurred"`
	ErrorMessage   string   `json:"error_message"`
}

// run accumulates the entries of one benchmark run.
type run struct {
	name  string
	label string
	th    int

	iters, real, cpu, bytes, items []float64

	// aggs maps aggregate name ("mean", "median", ...) to the
	// values of that aggregate, in the order iters, real, cpu,
	// bytes, items.
	aggs map[string][5]float64
}

// Read parses a Google Benchmark JSON result file from r. fileName is
// used in error messages; it is purely diagnostic.
func Read(r io.Reader, fileName string) (*ResultSet, error) {
	var f jsonFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, &SyntaxError{fileName, err.Error()}
	}

	rs := &ResultSet{
		Meta: Meta{
			TimeUnit:   string(benchunit.Nanosecond),
			Date:       f.Context.Date,
			Host:       f.Context.Host,
			Executable: f.Context.Executable,
			NumCPUs:    f.Context.NumCPUs,
			MHzPerCPU:  f.Context.MHzPerCPU,
			BuildType:  f.Context.BuildType,
		},
	}

	var runs []*run
	byName := make(map[string]*run)
	unitSet := false
	for _, b := range f.Benchmarks {
		name := runName(b)
		if b.ErrorOccurred {
			rs.Warnings = append(rs.Warnings, &RunError{name, b.ErrorMessage})
			continue
		}
		if b.AggregateName == "cv" {
			// Coefficients of variation are ratios, not times.
			continue
		}

		unit := benchunit.Nanosecond
		if b.TimeUnit != "" {
			u, err := benchunit.ParseTimeUnit(b.TimeUnit)
			if err != nil {
				return nil, &SyntaxError{fileName, fmt.Sprintf("benchmark %s: %v", name, err)}
			}
			unit = u
		}
		if !unitSet {
			rs.Meta.TimeUnit = string(unit)
			unitSet = true
		}

		ru := byName[name]
		if ru == nil {
			ru = &run{name: name, label: b.Label, th: b.Threads}
			byName[name] = ru
			runs = append(runs, ru)
		}

		var bytes, items float64
		if b.BytesPerSecond != nil {
			bytes = *b.BytesPerSecond
		}
		if b.ItemsPerSecond != nil {
			items = *b.ItemsPerSecond
		}
		vals := [5]float64{b.Iterations, unit.ToMicro(b.RealTime), unit.ToMicro(b.CPUTime), bytes, items}

		if b.RunType == "aggregate" {
			if ru.aggs == nil {
				ru.aggs = make(map[string][5]float64)
			}
			ru.aggs[b.AggregateName] = vals
			continue
		}
		ru.iters = append(ru.iters, vals[0])
		ru.real = append(ru.real, vals[1])
		ru.cpu = append(ru.cpu, vals[2])
		if b.BytesPerSecond != nil {
			ru.bytes = append(ru.bytes, bytes)
		}
		if b.ItemsPerSecond != nil {
			ru.items = append(ru.items, items)
		}
	}

	for _, ru := range runs {
		rec := ru.record()
		if rec == nil {
			continue
		}
		rs.Records = append(rs.Records, rec)
	}
	if len(rs.Records) == 0 {
		return nil, &SyntaxError{fileName, ErrNoBenchmarks.Error()}
	}
	return rs, nil
}

// runName returns the run name of b, stripping the aggregate suffix of
// files written before run_name was reported.
func runName(b jsonBenchmark) string {
	if b.RunName != "" {
		return b.RunName
	}
	if b.AggregateName != "" {
		return strings.TrimSuffix(b.Name, "_"+b.AggregateName)
	}
	return b.Name
}

// record folds the entries of ru into a Record. It returns nil if ru
// has no usable entry.
func (ru *run) record() *Record {
	n := ParseName(ru.name)
	rec := &Record{
		Name:      ru.name,
		Base:      n.Base,
		Templates: n.Templates,
		Arguments: n.Arguments,
		Modifiers: n.Modifiers,
		Label:     ru.label,
		Threads:   n.Threads,
	}
	if ru.th > 0 {
		rec.Threads = ru.th
	}

	if len(ru.real) > 0 {
		rec.Repetitions = len(ru.real)
		rec.Iterations = summarize(ru.iters)
		rec.RealTime = summarize(ru.real)
		rec.CPUTime = summarize(ru.cpu)
		rec.HasBytes, rec.HasItems = len(ru.bytes) > 0, len(ru.items) > 0
		rec.BytesPerSec = summarize(ru.bytes)
		rec.ItemsPerSec = summarize(ru.items)
		return rec
	}
	if len(ru.aggs) == 0 {
		return nil
	}

	// Only aggregates were reported.
	var center [5]float64
	if v, ok := ru.aggs["median"]; ok {
		center = v
	} else if v, ok := ru.aggs["mean"]; ok {
		center = v
	} else {
		return nil
	}
	rec.Repetitions = 1
	sums := [5]*benchmath.Summary{&rec.Iterations, &rec.RealTime, &rec.CPUTime, &rec.BytesPerSec, &rec.ItemsPerSec}
	for i, s := range sums {
		*s = benchmath.Constant(center[i])
		if v, ok := ru.aggs["mean"]; ok {
			s.Mean = v[i]
		}
		if v, ok := ru.aggs["median"]; ok {
			s.Median = v[i]
		}
		if v, ok := ru.aggs["stddev"]; ok {
			s.Stddev = v[i]
		}
		if v, ok := ru.aggs["min"]; ok {
			s.Min = v[i]
		}
		if v, ok := ru.aggs["max"]; ok {
			s.Max = v[i]
		}
	}
	rec.HasBytes = rec.BytesPerSec.Median != 0
	rec.HasItems = rec.ItemsPerSec.Median != 0
	return rec
}

func summarize(vals []float64) benchmath.Summary {
	if len(vals) == 0 {
		return benchmath.Constant(0)
	}
	return benchmath.NewSample(vals).Summary()
}
