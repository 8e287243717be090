// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

//go:build cgo
// +build cgo

// Package cstr exposes the C library's case-insensitive string comparison
// as a reference implementation for ASCII folding.
package cstr

/*
#include <stdlib.h>
#include <strings.h>
*/
import "C"
import "unsafe"

func clamp(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

// Strcasecmp compares s and t with strcasecmp(3) in the "C" locale. The
// result is -1, 0 or +1. s and t must not contain NUL bytes.
func Strcasecmp(s, t string) int {
	cs := C.CString(s)
	ct := C.CString(t)
	ret := int(C.strcasecmp(cs, ct))
	C.free(unsafe.Pointer(cs))
	C.free(unsafe.Pointer(ct))
	return clamp(ret)
}
