// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"os"
)

// A FileError reports a file that could not be read or parsed.
type FileError struct {
	Path string
	// Additional is set when Path is an additional file of a
	// Source rather than its primary file.
	Additional bool
	Err        error
}

func (e *FileError) Error() string {
	which := "original"
	if e.Additional {
		which = "additional"
	}
	return fmt.Sprintf("error parsing %s file: %s -> %v", which, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// An AddFile is a result file merged into the primary file of a
// Source.
type AddFile struct {
	Path string
	// Append merges the records by concatenation. Otherwise,
	// records replace primary records of the same name.
	Append bool
}

// A Source is a primary result file plus the additional files merged
// into it, in order. A Source can be loaded again whenever its files
// change.
type Source struct {
	Path       string
	Additional []AddFile
}

// Load reads and merges the files of src. Any failure is fatal and is
// reported as a *FileError.
func (src *Source) Load() (*ResultSet, error) {
	rs, err := ReadFile(src.Path)
	if err != nil {
		return nil, &FileError{src.Path, false, err}
	}
	for _, add := range src.Additional {
		ars, err := ReadFile(add.Path)
		if err != nil {
			return nil, &FileError{add.Path, true, err}
		}
		if add.Append {
			rs.Append(ars)
		} else {
			rs.Overwrite(ars)
		}
	}
	return rs, nil
}

// Paths returns every file of src, primary first.
func (src *Source) Paths() []string {
	paths := []string{src.Path}
	for _, add := range src.Additional {
		paths = append(paths, add.Path)
	}
	return paths
}

// ReadFile reads the result file at path.
func ReadFile(path string) (*ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}
