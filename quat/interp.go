// SPDX-License-Identifier: MIT

package quat

import "github.com/katalvlaran/lvgeom/scalar"

// Nlerp linearly interpolates q → o and renormalizes. It does not correct
// the sign of o; callers wanting the short arc use Slerp or negate o when
// q.Dot(o) < 0.
func (q Quat[T]) Nlerp(o Quat[T], t T) Quat[T] {
	return q.Scale(1 - t).Add(o.Scale(t)).Normalize()
}

// Slerp interpolates between the unit quaternions q and o along the
// shorter great-circle arc: t = 0 yields q, t = 1 yields o (or -o, the same
// rotation, when the short arc required flipping it). t is not clamped.
//
// Algorithm:
//   - d = q·o. If d < 0, replace o by -o and d by -d (shortest arc).
//   - If d > threshold, return Nlerp(q, o, t): sin(θ) ≈ 0 would make the
//     angle-fraction weights unstable.
//   - Otherwise θ = acos(d) and the result is
//     q·sin((1−t)θ)/sin(θ) + o·sin(tθ)/sin(θ).
//
// Options:
//   - WithSlerpThreshold(x) replaces DefaultSlerpThreshold.
//
// Complexity:
//   - Time O(1): one acos and three sines at most.
func Slerp[T scalar.Float](q, o Quat[T], t T, opts ...Option) Quat[T] {
	cfg := resolve(opts)

	d := q.Dot(o)
	if d < 0 {
		o = o.Neg()
		d = -d
	}
	if float64(d) > cfg.SlerpThreshold {
		return q.Nlerp(o, t)
	}

	theta := scalar.Acos(scalar.Min(d, 1))
	sinTheta := scalar.Sin(theta)
	w1 := scalar.Sin((1-t)*theta) / sinTheta
	w2 := scalar.Sin(t*theta) / sinTheta
	return q.Scale(w1).Add(o.Scale(w2))
}

// Slerp is the method form of the package-level Slerp.
func (q Quat[T]) Slerp(o Quat[T], t T, opts ...Option) Quat[T] { return Slerp(q, o, t, opts...) }
