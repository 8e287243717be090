// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

// NullString represents a String that may be null. The zero value is null.
//
// A null NullString is only equal to another null NullString and it is
// ordered before every non-null value.
type NullString struct {
	Val   String
	Valid bool // Valid is true if Val is not null
}

// Some returns a valid NullString holding New(s).
func Some(s string) NullString {
	return NullString{Val: New(s), Valid: true}
}

// NullOf returns a valid NullString holding s.
func NullOf(s String) NullString {
	return NullString{Val: s, Valid: true}
}

func nullPtr(p *String) NullString {
	if p == nil {
		return NullString{}
	}
	return NullString{Val: *p, Valid: true}
}

// EqualNull reports whether a and b are both null or both valid and equal
// ignoring case.
func EqualNull(a, b NullString) bool {
	if !a.Valid || !b.Valid {
		return a.Valid == b.Valid
	}
	return a.Val.Equal(b.Val)
}

// CompareNull compares a and b like Compare, except that null sorts before
// any valid value and two nulls are equal.
func CompareNull(a, b NullString) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	}
	return Compare(a.Val, b.Val)
}

// EqualPtr is EqualNull with nil pointers treated as null.
func EqualPtr(a, b *String) bool {
	return EqualNull(nullPtr(a), nullPtr(b))
}

// ComparePtr is CompareNull with nil pointers treated as null.
func ComparePtr(a, b *String) int {
	return CompareNull(nullPtr(a), nullPtr(b))
}

// IsNull reports whether n is null.
func (n NullString) IsNull() bool { return !n.Valid }

// Value returns the value of n or "" if n is null.
func (n NullString) Value() string {
	if !n.Valid {
		return ""
	}
	return n.Val.val
}

// String returns the value of n or "" if n is null.
func (n NullString) String() string { return n.Value() }

// Hash returns the hash of n. All null values hash to 0.
func (n NullString) Hash() uint64 {
	if !n.Valid {
		return 0
	}
	return n.Val.Hash()
}

// Equal reports whether n and t are equal, see EqualNull.
func (n NullString) Equal(t NullString) bool { return EqualNull(n, t) }

// NotEqual is the negation of Equal.
func (n NullString) NotEqual(t NullString) bool { return !EqualNull(n, t) }

// Compare compares n with t, see CompareNull.
func (n NullString) Compare(t NullString) int { return CompareNull(n, t) }

// Less reports whether n sorts before t. Null sorts first.
func (n NullString) Less(t NullString) bool { return CompareNull(n, t) < 0 }

// LessEqual reports whether n sorts before or equal to t.
func (n NullString) LessEqual(t NullString) bool { return CompareNull(n, t) <= 0 }

// Greater reports whether n sorts after t.
func (n NullString) Greater(t NullString) bool { return CompareNull(n, t) > 0 }

// GreaterEqual reports whether n sorts after or equal to t.
func (n NullString) GreaterEqual(t NullString) bool { return CompareNull(n, t) >= 0 }
