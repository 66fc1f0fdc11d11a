// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage provides key-value stores for chart settings.
//
// Keys are "/"-separated paths such as "lines/axis/x/title". A Store
// is read and written in memory; Sync persists pending changes.
// Stores are not safe for concurrent use.
package storage

import (
	"github.com/spf13/cast"
)

// A Store is a settings store with typed getters.
//
// Each getter reports false if key is not set or if its value cannot
// be converted to the requested type.
type Store interface {
	Bool(key string) (bool, bool)
	Int(key string) (int, bool)
	Float(key string) (float64, bool)
	String(key string) (string, bool)

	// Set sets key to value. value should be a bool, a number or
	// a string.
	Set(key string, value any)
	Delete(key string)

	// Sync persists all changes made since the last Sync.
	Sync() error
}

// mapStore is an in-memory Store. Keys are passed through norm, if
// set, before use.
type mapStore struct {
	vals map[string]any
	norm func(string) string

	// dirty and deleted track the changes since the last sync.
	dirty   map[string]bool
	deleted map[string]bool
}

func newMapStore(norm func(string) string) *mapStore {
	return &mapStore{
		vals:    make(map[string]any),
		norm:    norm,
		dirty:   make(map[string]bool),
		deleted: make(map[string]bool),
	}
}

func (s *mapStore) key(k string) string {
	if s.norm != nil {
		return s.norm(k)
	}
	return k
}

func (s *mapStore) get(key string) (any, bool) {
	v, ok := s.vals[s.key(key)]
	return v, ok
}

func (s *mapStore) Bool(key string) (bool, bool) {
	v, ok := s.get(key)
	if !ok {
		return false, false
	}
	b, err := cast.ToBoolE(v)
	return b, err == nil
}

func (s *mapStore) Int(key string) (int, bool) {
	v, ok := s.get(key)
	if !ok {
		return 0, false
	}
	i, err := cast.ToIntE(v)
	return i, err == nil
}

func (s *mapStore) Float(key string) (float64, bool) {
	v, ok := s.get(key)
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	return f, err == nil
}

func (s *mapStore) String(key string) (string, bool) {
	v, ok := s.get(key)
	if !ok {
		return "", false
	}
	str, err := cast.ToStringE(v)
	return str, err == nil
}

func (s *mapStore) Set(key string, value any) {
	k := s.key(key)
	s.vals[k] = value
	s.dirty[k] = true
	delete(s.deleted, k)
}

func (s *mapStore) Delete(key string) {
	k := s.key(key)
	if _, ok := s.vals[k]; !ok {
		return
	}
	delete(s.vals, k)
	delete(s.dirty, k)
	s.deleted[k] = true
}

// resetChanges forgets the changes since the last sync.
func (s *mapStore) resetChanges() {
	s.dirty = make(map[string]bool)
	s.deleted = make(map[string]bool)
}

// Memory is a Store that keeps settings in memory only.
type Memory struct {
	*mapStore
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{newMapStore(nil)}
}

// Sync does nothing.
func (m *Memory) Sync() error {
	m.resetChanges()
	return nil
}

// Len returns the number of keys set in m.
func (m *Memory) Len() int {
	return len(m.vals)
}

// Group returns a view of s where every key is prefixed by prefix
// and a "/".
func Group(s Store, prefix string) Store {
	if g, ok := s.(*group); ok {
		return &group{g.s, g.prefix + prefix + "/"}
	}
	return &group{s, prefix + "/"}
}

type group struct {
	s      Store
	prefix string
}

func (g *group) Bool(key string) (bool, bool)     { return g.s.Bool(g.prefix + key) }
func (g *group) Int(key string) (int, bool)       { return g.s.Int(g.prefix + key) }
func (g *group) Float(key string) (float64, bool) { return g.s.Float(g.prefix + key) }
func (g *group) String(key string) (string, bool) { return g.s.String(g.prefix + key) }
func (g *group) Set(key string, value any)        { g.s.Set(g.prefix+key, value) }
func (g *group) Delete(key string)                { g.s.Delete(g.prefix + key) }
func (g *group) Sync() error                      { return g.s.Sync() }
