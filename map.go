// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import "golang.org/x/exp/maps"

type mapEntry[V any] struct {
	key String
	val V
}

// A Map is a hash map with String keys. Keys that only differ in case are
// the same key: the spelling of the first key stored is kept and later
// stores only replace the value.
//
// The zero value is an empty map ready to use. A Map must not be used
// concurrently from multiple goroutines.
type Map[V any] struct {
	m map[string]mapEntry[V] // folded key => entry
}

// NewMap returns an empty Map with space for size keys.
func NewMap[V any](size int) *Map[V] {
	return &Map[V]{m: make(map[string]mapEntry[V], size)}
}

// Set sets the value of key to v and reports whether key was added. If a
// key equal to key, ignoring case, is already present its spelling is kept.
func (m *Map[V]) Set(key String, v V) bool {
	if m.m == nil {
		m.m = make(map[string]mapEntry[V])
	}
	e, ok := m.m[key.folded]
	if !ok {
		e.key = key
	}
	e.val = v
	m.m[key.folded] = e
	return !ok
}

// Get returns the value stored under key ignoring case.
func (m *Map[V]) Get(key String) (V, bool) {
	e, ok := m.m[key.folded]
	return e.val, ok
}

// Key returns the stored spelling of the key equal to key.
func (m *Map[V]) Key(key String) (String, bool) {
	e, ok := m.m[key.folded]
	return e.key, ok
}

// Contains reports whether a key equal to key is present.
func (m *Map[V]) Contains(key String) bool {
	_, ok := m.m[key.folded]
	return ok
}

// Delete removes key and reports if it was present.
func (m *Map[V]) Delete(key String) bool {
	if _, ok := m.m[key.folded]; !ok {
		return false
	}
	delete(m.m, key.folded)
	return true
}

// Len returns the number of keys in m.
func (m *Map[V]) Len() int { return len(m.m) }

// Range calls fn for each key and value in no particular order until fn
// returns false.
func (m *Map[V]) Range(fn func(key String, v V) bool) {
	for _, e := range m.m {
		if !fn(e.key, e.val) {
			return
		}
	}
}

// Keys returns the stored keys sorted ignoring case.
func (m *Map[V]) Keys() []String {
	a := make([]String, 0, len(m.m))
	for _, e := range maps.Values(m.m) {
		a = append(a, e.key)
	}
	Sort(a)
	return a
}
