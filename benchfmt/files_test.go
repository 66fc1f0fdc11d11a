// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o666); err != nil {
		t.Fatal(err)
	}
	return path
}

func benchJSON(entries ...string) string {
	var b strings.Builder
	b.WriteString(`{"benchmarks": [`)
	for i := 0; i < len(entries); i += 2 {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"name": "` + entries[i] + `", "run_type": "iteration", "iterations": 1, "real_time": ` +
			entries[i+1] + `, "cpu_time": 1, "time_unit": "us"}`)
	}
	b.WriteString(`]}`)
	return b.String()
}

func TestSourceLoad(t *testing.T) {
	dir := t.TempDir()
	primary := writeFile(t, dir, "a.json", benchJSON("BM_A/1", "1", "BM_A/2", "2"))
	app := writeFile(t, dir, "b.json", benchJSON("BM_B", "3"))
	over := writeFile(t, dir, "c.json", benchJSON("BM_A/2", "7"))

	src := &Source{
		Path:       primary,
		Additional: []AddFile{{Path: app, Append: true}, {Path: over}},
	}
	got, err := src.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"BM_A/1=1", "BM_A/2=7", "BM_B=3"}
	if g := strings.Join(summary(got), " "); g != strings.Join(want, " ") {
		t.Errorf("want %v, got %s", want, g)
	}
	if n := len(src.Paths()); n != 3 {
		t.Errorf("want 3 paths, got %d", n)
	}
}

func TestSourceLoadErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", benchJSON("BM_A", "1"))
	empty := writeFile(t, dir, "empty.json", "")

	check := func(src *Source, wantPath string, wantAdditional bool, wantMsg string) {
		t.Helper()
		_, err := src.Load()
		var fe *FileError
		if !errors.As(err, &fe) {
			t.Fatalf("want FileError, got %v", err)
		}
		if fe.Path != wantPath || fe.Additional != wantAdditional {
			t.Errorf("want error for %s (additional %v), got %+v", wantPath, wantAdditional, fe)
		}
		if !strings.HasPrefix(err.Error(), wantMsg) {
			t.Errorf("want message starting with %q, got %q", wantMsg, err)
		}
	}
	check(&Source{Path: empty}, empty, false, "error parsing original file: "+empty+" -> ")
	check(&Source{Path: filepath.Join(dir, "missing.json")}, filepath.Join(dir, "missing.json"), false, "error parsing original file")
	check(&Source{Path: good, Additional: []AddFile{{Path: empty, Append: true}}}, empty, true, "error parsing additional file")
}
