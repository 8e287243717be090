// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import "golang.org/x/exp/maps"

// A Set is a hash set of Strings. Strings that only differ in case are the
// same element and the first one added is the one stored.
//
// The zero value is an empty set ready to use. A Set must not be used
// concurrently from multiple goroutines, see SyncSet.
type Set struct {
	m map[uint64][]String // hash => bucket
	n int
}

// NewSet returns a Set containing values.
func NewSet(values ...String) *Set {
	s := &Set{m: make(map[uint64][]String, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add adds v to the set and reports if it was added. Nothing is added if a
// String equal to v, ignoring case, is already in the set.
func (s *Set) Add(v String) bool {
	if s.m == nil {
		s.m = make(map[uint64][]String)
	}
	h := v.Hash()
	for _, x := range s.m[h] {
		if x.Equal(v) {
			return false
		}
	}
	s.m[h] = append(s.m[h], v)
	s.n++
	return true
}

// Get returns the String stored in the set that is equal to v.
func (s *Set) Get(v String) (String, bool) {
	for _, x := range s.m[v.Hash()] {
		if x.Equal(v) {
			return x, true
		}
	}
	return String{}, false
}

// Contains reports whether a String equal to v is in the set.
func (s *Set) Contains(v String) bool {
	_, ok := s.Get(v)
	return ok
}

// Remove removes the String equal to v and reports if it was present.
func (s *Set) Remove(v String) bool {
	h := v.Hash()
	bucket := s.m[h]
	for i, x := range bucket {
		if !x.Equal(v) {
			continue
		}
		if len(bucket) == 1 {
			delete(s.m, h)
		} else {
			s.m[h] = append(bucket[:i:i], bucket[i+1:]...)
		}
		s.n--
		return true
	}
	return false
}

// Len returns the number of elements in the set.
func (s *Set) Len() int { return s.n }

// Range calls fn for each element of the set in no particular order until
// fn returns false.
func (s *Set) Range(fn func(v String) bool) {
	for _, bucket := range s.m {
		for _, v := range bucket {
			if !fn(v) {
				return
			}
		}
	}
}

// Values returns the elements of the set sorted ignoring case.
func (s *Set) Values() []String {
	a := make([]String, 0, s.n)
	for _, bucket := range maps.Values(s.m) {
		a = append(a, bucket...)
	}
	Sort(a)
	return a
}
