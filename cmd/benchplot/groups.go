// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/benchviz/benchplot/benchchart"
	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/benchproc"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [flags] results.json",
	Short: "List the series of a chart of benchmark results",
	Long: `groups lists the series a chart of the benchmark results would have
and the X values of each, followed by the benchmarks left out of the
chart and why.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroups,
}

func init() {
	addChartFlags(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	ca, err := loadChart(cmd, args[0])
	if err != nil {
		return err
	}
	idxs := ca.idxs
	if idxs == nil {
		idxs = ca.rs.AllIndexes()
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	if z := ca.params.Z; z != nil {
		fmt.Fprintf(tw, "SERIES\t%s\tPOINTS\t%s\n", strings.ToUpper(z.String()), strings.ToUpper(ca.params.X.String()))
		for _, s := range benchproc.Segment3D(ca.rs, idxs, ca.params.X, *z) {
			for _, row := range s.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, row.ZName, len(row.Idxs), values(ca.rs, row.Idxs, ca.params.X))
			}
		}
	} else {
		fmt.Fprintf(tw, "SERIES\tPOINTS\t%s\n", strings.ToUpper(ca.params.X.String()))
		for _, sub := range benchproc.Group(ca.rs, idxs, ca.params.X) {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", sub.Name, len(sub.Idxs), values(ca.rs, sub.Idxs, ca.params.X))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	c := benchchart.Build(ca.rs, idxs, ca.params)
	printWarnings(cmd.ErrOrStderr(), c)
	return nil
}

// values returns the values of slot of the records at idxs.
func values(rs *benchfmt.ResultSet, idxs []int, slot benchproc.Slot) string {
	vals := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		v, _ := slot.Value(rs.Records[idx])
		vals = append(vals, v)
	}
	return strings.Join(vals, " ")
}

func printWarnings(w io.Writer, c *benchchart.Chart) {
	for _, err := range c.Warnings {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
	if c.Empty() {
		fmt.Fprintf(w, "warning: %s\n", c.Placeholder)
	}
}
