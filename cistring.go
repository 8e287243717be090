// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/charlievieth/cistring/internal/fold"
)

// String is an immutable case-insensitive string.
//
// The original value is preserved and returned by Value and String, but
// equality, ordering and hashing only consider the folded form of the
// value. The folded form is computed once by New.
//
// The zero value is the empty string.
//
// Strings cannot be compared with the == operator (it would be case
// sensitive): use Equal or Compare. For the same reason a String is not a
// valid map key, use a Map, Set or SyncSet instead.
type String struct {
	// This artifact prevents this struct from being compared
	// with itself. It consumes no space as long as it's not the
	// last field in the struct.
	_      [0]struct{ notComparable []byte }
	val    string
	folded string
}

// New returns a String holding s verbatim.
func New(s string) String {
	return String{val: s, folded: fold.String(s)}
}

// Value returns the case-preserved value of s.
func (s String) Value() string { return s.val }

// String returns the case-preserved value of s. It allows a String to be
// used with the fmt and text/template packages.
func (s String) String() string { return s.val }

// GoString implements fmt.GoStringer.
func (s String) GoString() string {
	return "cistring.New(" + strconv.Quote(s.val) + ")"
}

// Len returns the length in bytes of the value of s.
func (s String) Len() int { return len(s.val) }

// IsEmpty reports whether the value of s is "".
func (s String) IsEmpty() bool { return s.val == "" }

// Equal reports whether s and t are equal ignoring case.
func (s String) Equal(t String) bool {
	return s.folded == t.folded
}

// NotEqual reports whether s and t are not equal ignoring case.
func (s String) NotEqual(t String) bool {
	return !s.Equal(t)
}

// EqualString reports whether the value of s is equal to str ignoring case.
//
// This is not the same as Equal: a String is never equal to a value of
// another type, but its value may be compared with a string.
func (s String) EqualString(str string) bool {
	return fold.Equal(s.folded, str)
}

// EqualAny reports whether v is a String or a valid NullString (or a
// non-nil pointer to either) that is equal to s. Values of any other type, including
// strings with the same text, are never equal to s.
func (s String) EqualAny(v any) bool {
	switch x := v.(type) {
	case String:
		return s.Equal(x)
	case *String:
		return x != nil && s.Equal(*x)
	case NullString:
		return x.Valid && s.Equal(x.Val)
	case *NullString:
		return x != nil && x.Valid && s.Equal(x.Val)
	}
	return false
}

// Hash returns the hash of the folded value of s. Equal Strings have equal
// hashes.
func (s String) Hash() uint64 {
	return xxhash.Sum64String(s.folded)
}

// Compare returns an integer comparing two Strings lexicographically
// ignoring case. The result will be 0 if a == b, -1 if a < b, and +1 if
// a > b.
func Compare(a, b String) int {
	return strings.Compare(a.folded, b.folded)
}

// Compare compares s with t, see the package level Compare function.
func (s String) Compare(t String) int { return Compare(s, t) }

// Less reports whether s sorts before t ignoring case.
func (s String) Less(t String) bool { return Compare(s, t) < 0 }

// LessEqual reports whether s sorts before or equal to t ignoring case.
func (s String) LessEqual(t String) bool { return Compare(s, t) <= 0 }

// Greater reports whether s sorts after t ignoring case.
func (s String) Greater(t String) bool { return Compare(s, t) > 0 }

// GreaterEqual reports whether s sorts after or equal to t ignoring case.
func (s String) GreaterEqual(t String) bool { return Compare(s, t) >= 0 }

// CompareAny compares s with v, which must be a String, NullString or a
// pointer to either. A nil v, nil pointer or null NullString is less than s.
//
// A *TypeMismatchError is returned if v is of any other type, including
// string. Use Compare where the type of v is known statically.
func (s String) CompareAny(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 1, nil
	case String:
		return Compare(s, x), nil
	case *String:
		if x == nil {
			return 1, nil
		}
		return Compare(s, *x), nil
	case NullString:
		return CompareNull(NullOf(s), x), nil
	case *NullString:
		if x == nil {
			return 1, nil
		}
		return CompareNull(NullOf(s), *x), nil
	}
	return 0, &TypeMismatchError{Got: fmt.Sprintf("%T", v)}
}

// FromStrings converts a []string to a []String.
func FromStrings(a []string) []String {
	s := make([]String, len(a))
	for i := range a {
		s[i] = New(a[i])
	}
	return s
}

// ToStrings converts a []String to a case-preserved []string.
func ToStrings(a []String) []string {
	s := make([]string, len(a))
	for i := range a {
		s[i] = a[i].val
	}
	return s
}
