// SPDX-License-Identifier: MIT

package scalar

// ApproxEqual reports whether a and b agree within the resolved epsilon,
// scaled by max(1, |a|, |b|) so that large magnitudes compare relatively
// and values near zero compare absolutely.
//
// Determinism:
//   - Pure and branch-stable; NaN never compares equal to anything.
//
// Complexity:
//   - Time O(1), Space O(1).
func ApproxEqual[T Float](a, b T, opts ...Option) bool {
	return approxEqualEps(a, b, Resolve[T](opts...))
}

// ApproxZero reports whether |x| is within the resolved epsilon of zero.
func ApproxZero[T Float](x T, opts ...Option) bool {
	return Abs(x) <= Resolve[T](opts...)
}

// ApproxEqualEps is ApproxEqual with an explicit tolerance. Composite types
// resolve options once and call this per component.
func ApproxEqualEps[T Float](a, b, eps T) bool {
	return approxEqualEps(a, b, eps)
}

func approxEqualEps[T Float](a, b, eps T) bool {
	if a == b {
		return true
	}
	scale := Max(T(1), Max(Abs(a), Abs(b)))
	return Abs(a-b) <= eps*scale
}
