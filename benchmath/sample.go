// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes summary statistics over repeated
// benchmark measurements.
//
// A benchmark run repeated N times produces N samples of each metric.
// Plots need either a single representative value (the mean) or a
// five-number summary for box charts; Sample provides both.
package benchmath

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one metric of a
// given benchmark.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. It sorts
// values in place.
func NewSample(values []float64) *Sample {
	// Sort values for fast order statistics.
	sort.Float64s(values)
	return &Sample{values}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values, Sorted: true}
}

// A Summary is the distribution summary of a Sample.
//
// For an empty Sample, all fields are NaN and N is 0. For a single
// value, every order statistic equals that value and Stddev is 0.
type Summary struct {
	Min, Max           float64
	Median             float64
	LowQuart, UppQuart float64
	Mean, Stddev       float64

	// N is the number of values summarized.
	N int
}

// Summary returns the five-number summary of s, together with its
// mean and standard deviation.
func (s *Sample) Summary() Summary {
	n := len(s.Values)
	if n == 0 {
		nan := math.NaN()
		return Summary{nan, nan, nan, nan, nan, nan, nan, 0}
	}
	if n == 1 {
		v := s.Values[0]
		return Summary{v, v, v, v, v, v, 0, 1}
	}
	sample := s.sample()
	min, max := sample.Bounds()
	return Summary{
		Min:      min,
		Max:      max,
		Median:   sample.Quantile(0.5),
		LowQuart: sample.Quantile(0.25),
		UppQuart: sample.Quantile(0.75),
		Mean:     sample.Mean(),
		Stddev:   sample.StdDev(),
		N:        n,
	}
}

// Constant returns the Summary of a metric known only through a
// single value, such as an aggregate reported by the benchmark runner.
func Constant(v float64) Summary {
	return Summary{v, v, v, v, v, v, 0, 1}
}
