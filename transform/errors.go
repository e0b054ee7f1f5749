// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularScale is returned by Invert when the scale is zero (or not
	// finite), so no inverse transform exists.
	ErrSingularScale = errors.New("transform: singular scale")

	// ErrNotAffine is returned by FromMat4 when the bottom row is not
	// (0, 0, 0, 1).
	ErrNotAffine = errors.New("transform: matrix is not affine")
)

const (
	opInvert3      = "Decomposed3.Invert"
	opInvert2      = "Decomposed2.Invert"
	opAffineInvert = "Affine3.Invert"
	opFromMat4     = "FromMat4"
)

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
