// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package cistring implements an immutable case-insensitive string type.
//
// A [String] preserves the value it was created with, but two Strings that
// only differ in case are equal, hash to the same value and are ordered
// together. Simple Unicode case folding is used: each rune is compared by
// its case folding orbit (see [unicode.SimpleFold]). Folding is not locale
// aware and no Unicode normalization is performed.
//
// Comparisons are strongly typed: a String is never equal to a string with
// the same text, and [String.CompareAny] returns an error matching
// [ErrTypeMismatch] when passed anything other than a String.
//
// Absent values are represented by [NullString], which orders null before
// every other value.
package cistring

// BUG(cvieth): There is no mechanism for full case folding, that is, for
// characters that involve multiple runes in the input or output
// (see: https://pkg.go.dev/unicode#pkg-note-BUG).
