// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// Every message is prefixed with "mat: ..." for easy grepping. Kernels wrap
// sentinels with the operation tag via matErrorf; callers use errors.Is.

package mat

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when the determinant is exactly zero.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf determinant.
	ErrNaNInf = errors.New("mat: NaN or Inf encountered")
)

// Operation tags for uniform error wrapping.
const (
	opInvert2 = "Mat2.Invert"
	opInvert3 = "Mat3.Invert"
	opInvert4 = "Mat4.Invert"
)

// matErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
