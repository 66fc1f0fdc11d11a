// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

const resultsJSON = `{
  "context": {"host_name": "bench1", "num_cpus": 8},
  "benchmarks": [
    {"name": "BM_Foo/8", "run_type": "iteration", "iterations": 100, "real_time": 1, "cpu_time": 1, "time_unit": "us"},
    {"name": "BM_Foo/16", "run_type": "iteration", "iterations": 100, "real_time": 2, "cpu_time": 2, "time_unit": "us"},
    {"name": "BM_Foo/32", "run_type": "iteration", "iterations": 100, "real_time": 4, "cpu_time": 4, "time_unit": "us"},
    {"name": "BM_Bar/8", "run_type": "iteration", "iterations": 100, "real_time": 3, "cpu_time": 3, "time_unit": "us"}
  ]
}`

func writeResults(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "results.json")
	if err := os.WriteFile(path, []byte(resultsJSON), 0o666); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("benchplot %s: %v", strings.Join(args, " "), err)
	}
	return out.String(), errOut.String()
}

func TestGroups(t *testing.T) {
	dir := t.TempDir()
	path := writeResults(t, dir)
	out, errOut := run(t, "groups", "--settings", filepath.Join(dir, "settings.yaml"), path)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("want a header and 2 series, got:\n%s", out)
	}
	if f := strings.Fields(lines[1]); len(f) != 5 || f[0] != "BM_Foo" || f[1] != "3" {
		t.Errorf("BM_Foo: got %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "8 16 32") {
		t.Errorf("BM_Foo X values: got %q", lines[1])
	}
	if !strings.Contains(errOut, "BM_Bar") {
		t.Errorf("want a warning for BM_Bar, got %q", errOut)
	}
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	path := writeResults(t, dir)
	settings := filepath.Join(dir, "settings.yaml")
	chart := filepath.Join(dir, "chart.png")
	run(t, "plot", "--settings", settings, "--out", chart, "--theme", "Dark", "--time-unit", "ms", path)

	for _, f := range []string{chart, settings} {
		fi, err := os.Stat(f)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", f)
		}
	}
	data, err := os.ReadFile(settings)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Dark") {
		t.Errorf("theme not saved in settings:\n%s", data)
	}
}

func TestHelpFlagSyntax(t *testing.T) {
	// Flags take two dashes; only shorthands take one.
	single := regexp.MustCompile(`(^|[\s(])-[a-z]{2,}`)
	for _, cmd := range []*cobra.Command{rootCmd, plotCmd, groupsCmd} {
		for _, text := range []string{cmd.Long, cmd.Flags().FlagUsages(), cmd.PersistentFlags().FlagUsages()} {
			if m := single.FindString(text); m != "" {
				t.Errorf("%s help: single-dash flag %q", cmd.Name(), strings.TrimSpace(m))
			}
		}
	}
}
