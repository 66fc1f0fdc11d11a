// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// File is a Store kept in a YAML, JSON or TOML file, as selected by
// the file extension. Keys are case-insensitive.
type File struct {
	*mapStore
	path string
}

// OpenFile opens the settings file at path. A missing file is an
// empty store; it is created by the first Sync.
func OpenFile(path string) (*File, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !supported(ext) {
		return nil, fmt.Errorf("settings file %s: unsupported format %q", path, ext)
	}
	f := &File{newMapStore(fileKey), path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	for _, k := range v.AllKeys() {
		f.vals[k] = v.Get(k)
	}
	return f, nil
}

func supported(ext string) bool {
	for _, e := range viper.SupportedExts {
		if e == ext {
			return true
		}
	}
	return false
}

// fileKey maps a settings key to a viper key.
func fileKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, "/", "."))
}

// Sync writes all settings to the file.
func (f *File) Sync() error {
	v := viper.New()
	for k, val := range f.vals {
		v.Set(k, val)
	}
	if err := v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("writing settings %s: %w", f.path, err)
	}
	f.resetChanges()
	return nil
}
