// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch reports changes to benchmark result files.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// A Watcher watches a set of files for changes.
//
// Files are watched through their parent directories so that files
// replaced by a rename, as many editors and benchmark runners do,
// stay watched.
type Watcher struct {
	w     *fsnotify.Watcher
	files map[string]string // clean path -> path as given
}

// New returns a Watcher for paths.
func New(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	wt := &Watcher{w: w, files: make(map[string]string)}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		wt.files[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching %s: %w", p, err)
		}
	}
	return wt, nil
}

// Run calls changed with the path of each watched file that is
// written, created or renamed over, until ctx is done or the watcher
// fails. Calls are made one at a time from the goroutine running Run.
func (wt *Watcher) Run(ctx context.Context, changed func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-wt.w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if p, ok := wt.files[filepath.Clean(ev.Name)]; ok {
				changed(p)
			}
		case err, ok := <-wt.w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Close stops watching.
func (wt *Watcher) Close() error {
	return wt.w.Close()
}

// ErrEmpty is returned by Ready for empty files.
var ErrEmpty = errors.New("file is empty")

// Ready returns nil if the file at path exists, is readable and is
// not empty. A file being rewritten is often briefly empty.
func Ready(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() == 0 {
		return ErrEmpty
	}
	return nil
}
