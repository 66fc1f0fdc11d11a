// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReady(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full.json")
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(full, []byte("{}"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(empty, nil, 0o666); err != nil {
		t.Fatal(err)
	}

	if err := Ready(full); err != nil {
		t.Errorf("Ready(full): %v", err)
	}
	if err := Ready(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("Ready(empty): got %v, want ErrEmpty", err)
	}
	if err := Ready(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Ready(missing): got %v, want not exist", err)
	}
	if err := Ready(dir); err == nil {
		t.Errorf("Ready(dir): want error")
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(path, []byte("{}"), 0o666); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	changes := make(chan string, 16)
	go w.Run(ctx, func(p string) { changes <- p })

	if err := os.WriteFile(other, []byte("{}"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"benchmarks": []}`), 0o666); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changes:
		if p != path {
			t.Errorf("got change of %s, want %s", p, path)
		}
	case <-ctx.Done():
		t.Fatal("no change reported")
	}
}
