// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import "golang.org/x/exp/slices"

// Sort sorts a in increasing order ignoring case. The sort is stable, so
// values that only differ in case keep their original order.
func Sort(a []String) {
	slices.SortStableFunc(a, String.Less)
}

// IsSorted reports whether a is sorted in increasing order ignoring case.
func IsSorted(a []String) bool {
	return slices.IsSortedFunc(a, String.Less)
}

// BinarySearch searches for target in a sorted slice and returns the position
// where target is found, or the position where target would appear in the
// sort order; it also returns a bool saying whether the target is really
// found in the slice. The slice must be sorted in increasing order.
func BinarySearch(a []String, target String) (int, bool) {
	return slices.BinarySearchFunc(a, target, Compare)
}

// SortNull sorts a in increasing order with null values first. The sort is
// stable.
func SortNull(a []NullString) {
	slices.SortStableFunc(a, NullString.Less)
}

// Slice attaches the methods of sort.Interface to []String, sorting in
// increasing order ignoring case.
type Slice []String

func (x Slice) Len() int           { return len(x) }
func (x Slice) Less(i, j int) bool { return Compare(x[i], x[j]) < 0 }
func (x Slice) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// Sort is a convenience method: x.Sort() calls Sort(x).
func (x Slice) Sort() { Sort(x) }

// Search returns the result of applying BinarySearch to the receiver and x.
func (x Slice) Search(s String) (int, bool) { return BinarySearch(x, s) }
