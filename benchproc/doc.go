// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchproc groups benchmark records into chart series.
//
// A chart plots one metric of a set of benchmark records against one
// (or two, for surfaces) of their positional parameters. A Slot names
// such a parameter, for example the first argument of "BM_Foo/8" or
// the first template parameter of "BM_Foo<int>".
//
// The typical steps to turn a benchfmt.ResultSet into chart data are:
//
// 1. Select candidate records, either all of them
// (ResultSet.AllIndexes) or the records matching a pattern (Select).
//
// 2. Group the candidates by the X slot using Group. Each Subset holds
// the records whose identity is equal once the X parameter is erased;
// its Name is that erased identity, such as "BM_Foo" for "BM_Foo/8".
// For surfaces with a Z slot, use Segment3D instead, which produces
// one Surface per identity with both slots erased, one Row per Z
// value.
//
// 3. Validate the shape of the groups with CheckSubsets. Line and
// surface charts need every subset to have the same size, and at
// least two records.
//
// 4. Map each record's slot value to a plot coordinate with a
// Resolver. A Resolver is shared by all series of one axis so that
// the axis is either entirely numeric or entirely categorical.
//
// A record that does not have the requested slot, such as "BM_Foo/8"
// when grouping by the second argument, is excluded from any grouping
// on that slot.
package benchproc
