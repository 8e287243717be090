// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// A SyncSet is a set of Strings that is safe for concurrent use by multiple
// goroutines. It has the same semantics as Set.
//
// The zero value is an empty set ready to use. A SyncSet must not be copied
// after first use.
type SyncSet struct {
	once sync.Once
	m    *xsync.MapOf[string, String] // folded value => String
}

// NewSyncSet returns a SyncSet containing values.
func NewSyncSet(values ...String) *SyncSet {
	s := &SyncSet{m: xsync.NewMapOf[string, String]()}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *SyncSet) init() *xsync.MapOf[string, String] {
	s.once.Do(func() {
		if s.m == nil {
			s.m = xsync.NewMapOf[string, String]()
		}
	})
	return s.m
}

// Add adds v to the set and reports if it was added. Nothing is added if a
// String equal to v, ignoring case, is already in the set.
func (s *SyncSet) Add(v String) bool {
	_, loaded := s.init().LoadOrStore(v.folded, v)
	return !loaded
}

// Get returns the String stored in the set that is equal to v.
func (s *SyncSet) Get(v String) (String, bool) {
	return s.init().Load(v.folded)
}

// Contains reports whether a String equal to v is in the set.
func (s *SyncSet) Contains(v String) bool {
	_, ok := s.init().Load(v.folded)
	return ok
}

// Remove removes the String equal to v and reports if it was present.
func (s *SyncSet) Remove(v String) bool {
	_, ok := s.init().LoadAndDelete(v.folded)
	return ok
}

// Len returns the number of elements in the set.
func (s *SyncSet) Len() int { return s.init().Size() }

// Range calls fn for each element of the set in no particular order until
// fn returns false. Range does not block other methods.
func (s *SyncSet) Range(fn func(v String) bool) {
	s.init().Range(func(_ string, v String) bool {
		return fn(v)
	})
}

// Values returns the elements of the set sorted ignoring case.
func (s *SyncSet) Values() []String {
	m := s.init()
	a := make([]String, 0, m.Size())
	m.Range(func(_ string, v String) bool {
		a = append(a, v)
		return true
	})
	Sort(a)
	return a
}
