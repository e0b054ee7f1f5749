// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvgeom/scalar"

// validateDeterminant returns the plain sentinel for an unusable determinant.
// Exact zero is used rather than an epsilon: a legitimately tiny uniform
// scale (e.g. 1e-4 in 3D, det 1e-12) must stay invertible.
func validateDeterminant[T scalar.Float](det T) error {
	if !scalar.IsFinite(det) {
		return ErrNaNInf
	}
	if det == 0 {
		return ErrSingular
	}
	return nil
}

// approxEqualSlice compares two equal-length element slices.
func approxEqualSlice[T scalar.Float](a, b []T, opts ...scalar.Option) bool {
	eps := scalar.Resolve[T](opts...)
	for i := range a {
		if !scalar.ApproxEqualEps(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// orthonormalityError returns max |(MᵀM − I)[i][j]| for an n×n row-major matrix.
func orthonormalityError[T scalar.Float](m []T, n int) T {
	var worst T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var dot T
			for k := 0; k < n; k++ {
				dot += m[n*k+i] * m[n*k+j]
			}
			if i == j {
				dot--
			}
			worst = scalar.Max(worst, scalar.Abs(dot))
		}
	}
	return worst
}
