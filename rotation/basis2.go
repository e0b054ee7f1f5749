// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Basis2 is a 2×2 rotation matrix. The zero value is not a rotation; use
// Identity2 or a constructor.
type Basis2[T scalar.Float] struct {
	m mat.Mat2[T]
}

// Identity2 returns the null planar rotation.
func Identity2[T scalar.Float]() Basis2[T] { return Basis2[T]{m: mat.Identity2[T]()} }

// FromAngle returns the counter-clockwise rotation by theta.
func FromAngle[T scalar.Float](theta angle.Rad[T]) Basis2[T] {
	s, c := angle.SinCos(theta)
	return Basis2[T]{m: mat.Mat2[T]{c, -s, s, c}}
}

// BetweenVectors2 returns the rotation taking the direction of a onto the
// direction of b. Neither needs to be unit length, neither may be zero.
func BetweenVectors2[T scalar.Float](a, b vec.Vec2[T]) Basis2[T] {
	return FromAngle(angle.Atan2(a.Cross(b), a.Dot(b)))
}

// LookAt2 returns the rotation mapping the direction of dir onto +Y. In the
// plane the facing direction fixes the rotation, so no up vector is taken.
// dir must not be zero.
func LookAt2[T scalar.Float](dir vec.Vec2[T]) Basis2[T] {
	d := dir.Normalize()
	return Basis2[T]{m: mat.Mat2[T]{d.Y, -d.X, d.X, d.Y}}
}

// Unchecked2 wraps m without validation. The caller guarantees m is a
// rotation; nothing downstream re-checks it.
func Unchecked2[T scalar.Float](m mat.Mat2[T]) Basis2[T] { return Basis2[T]{m: m} }

// Angle returns the rotation angle in (-π, π].
func (b Basis2[T]) Angle() angle.Rad[T] { return angle.Atan2(b.m[2], b.m[0]) }

// Mat2 returns a copy of the underlying matrix.
func (b Basis2[T]) Mat2() mat.Mat2[T] { return b.m }

// RotateVec applies the rotation to v.
func (b Basis2[T]) RotateVec(v vec.Vec2[T]) vec.Vec2[T] { return b.m.MulVec(v) }

// RotatePoint rotates p about the origin.
func (b Basis2[T]) RotatePoint(p vec.Point2[T]) vec.Point2[T] {
	return vec.Point2FromVec(b.m.MulVec(p.ToVec()))
}

// Compose returns the rotation applying o first, then b.
func (b Basis2[T]) Compose(o Basis2[T]) Basis2[T] { return Basis2[T]{m: b.m.Mul(o.m)} }

// Invert returns the transpose.
func (b Basis2[T]) Invert() Basis2[T] { return Basis2[T]{m: b.m.Transpose()} }

// Orthonormalize rebuilds b from its normalized first column.
func (b Basis2[T]) Orthonormalize() Basis2[T] {
	c0 := b.m.Col(0).Normalize()
	return Basis2[T]{m: mat.FromCols2(c0, c0.Perp())}
}

// OrthonormalityError reports how far b has drifted from a rotation.
func (b Basis2[T]) OrthonormalityError() T { return b.m.OrthonormalityError() }

// ApproxEqual compares element-wise.
func (b Basis2[T]) ApproxEqual(o Basis2[T], opts ...scalar.Option) bool {
	return b.m.ApproxEqual(o.m, opts...)
}

// String implements fmt.Stringer.
func (b Basis2[T]) String() string { return "Basis2" + b.m.String() }
