// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import "errors"

// ErrTypeMismatch is matched by the errors returned when a String is
// compared with a value that is not a String.
var ErrTypeMismatch = errors.New("cistring: type mismatch")

// A TypeMismatchError is returned by CompareAny when it is passed a value
// that is not a String.
type TypeMismatchError struct {
	Got string // dynamic type of the value
}

func (e *TypeMismatchError) Error() string {
	return "cistring: cannot compare String with value of type " + e.Got
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
