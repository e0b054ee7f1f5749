// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Quat is the quaternion S + V.X·i + V.Y·j + V.Z·k.
type Quat[T scalar.Float] struct {
	S T
	V vec.Vec3[T]
}

// New builds the quaternion w + xi + yj + zk.
func New[T scalar.Float](w, x, y, z T) Quat[T] { return Quat[T]{S: w, V: vec.Vec3[T]{X: x, Y: y, Z: z}} }

// FromSV builds a quaternion from its scalar and vector parts.
func FromSV[T scalar.Float](s T, v vec.Vec3[T]) Quat[T] { return Quat[T]{S: s, V: v} }

// Identity returns 1 + 0i + 0j + 0k, the null rotation.
func Identity[T scalar.Float]() Quat[T] { return Quat[T]{S: 1} }

// Zero returns the additive identity.
func Zero[T scalar.Float]() Quat[T] { return Quat[T]{} }

// Add returns the component-wise sum.
func (q Quat[T]) Add(o Quat[T]) Quat[T] { return Quat[T]{q.S + o.S, q.V.Add(o.V)} }

// Sub returns the component-wise difference.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] { return Quat[T]{q.S - o.S, q.V.Sub(o.V)} }

// Scale multiplies every component by k.
func (q Quat[T]) Scale(k T) Quat[T] { return Quat[T]{q.S * k, q.V.Scale(k)} }

// Div divides every component by k.
func (q Quat[T]) Div(k T) Quat[T] { return Quat[T]{q.S / k, q.V.Div(k)} }

// Neg negates every component.
func (q Quat[T]) Neg() Quat[T] { return Quat[T]{-q.S, q.V.Neg()} }

// Dot returns the inner product.
func (q Quat[T]) Dot(o Quat[T]) T { return q.S*o.S + q.V.Dot(o.V) }

// Conjugate returns s - v. For a unit quaternion it is also the inverse.
func (q Quat[T]) Conjugate() Quat[T] { return Quat[T]{q.S, q.V.Neg()} }

// Magnitude2 returns the squared norm.
func (q Quat[T]) Magnitude2() T { return q.Dot(q) }

// Magnitude returns the Euclidean norm.
func (q Quat[T]) Magnitude() T { return scalar.Sqrt(q.Magnitude2()) }

// Mul returns the Hamilton product q·o.
//
//	(s₁, v₁)(s₂, v₂) = (s₁s₂ − v₁·v₂, s₁v₂ + s₂v₁ + v₁×v₂)
//
// The product is associative but not commutative.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		S: q.S*o.S - q.V.Dot(o.V),
		V: o.V.Scale(q.S).Add(q.V.Scale(o.S)).Add(q.V.Cross(o.V)),
	}
}

// Compose returns the rotation that applies o first, then q.
// It is the Hamilton product q·o; both inputs should be unit.
func (q Quat[T]) Compose(o Quat[T]) Quat[T] { return q.Mul(o) }

// Normalize returns q / |q|. A zero quaternion has no direction; the result
// is then non-finite.
func (q Quat[T]) Normalize() Quat[T] { return q.Scale(1 / q.Magnitude()) }

// Invert returns the multiplicative inverse conj(q) / |q|². For unit
// quaternions this is the conjugate, i.e. the opposite rotation.
func (q Quat[T]) Invert() Quat[T] { return q.Conjugate().Div(q.Magnitude2()) }

// IsUnit reports whether |q|² ≈ 1.
func (q Quat[T]) IsUnit(opts ...scalar.Option) bool {
	return scalar.ApproxEqual(q.Magnitude2(), 1, opts...)
}

// RotateVec applies the unit quaternion q to v, i.e. computes q·(0, v)·q*
// in the expanded form v + 2s(u×v) + 2u×(u×v).
func (q Quat[T]) RotateVec(v vec.Vec3[T]) vec.Vec3[T] {
	uv := q.V.Cross(v)
	uuv := q.V.Cross(uv)
	return v.Add(uv.Scale(2 * q.S)).Add(uuv.Scale(2))
}

// RotatePoint rotates p about the origin.
func (q Quat[T]) RotatePoint(p vec.Point3[T]) vec.Point3[T] {
	return vec.Point3FromVec(q.RotateVec(p.ToVec()))
}

// ToQuat returns q; it lets Quat satisfy rotation interfaces shared with
// matrix representations.
func (q Quat[T]) ToQuat() Quat[T] { return q }

// ApproxEqual compares components. Use SameRotation to treat q and -q as equal.
func (q Quat[T]) ApproxEqual(o Quat[T], opts ...scalar.Option) bool {
	eps := scalar.Resolve[T](opts...)
	return scalar.ApproxEqualEps(q.S, o.S, eps) &&
		scalar.ApproxEqualEps(q.V.X, o.V.X, eps) &&
		scalar.ApproxEqualEps(q.V.Y, o.V.Y, eps) &&
		scalar.ApproxEqualEps(q.V.Z, o.V.Z, eps)
}

// SameRotation reports whether q and o represent the same rotation,
// i.e. q ≈ o or q ≈ -o.
func (q Quat[T]) SameRotation(o Quat[T], opts ...scalar.Option) bool {
	return q.ApproxEqual(o, opts...) || q.ApproxEqual(o.Neg(), opts...)
}

// String implements fmt.Stringer.
func (q Quat[T]) String() string {
	return fmt.Sprintf("%v + %vi + %vj + %vk", q.S, q.V.X, q.V.Y, q.V.Z)
}
