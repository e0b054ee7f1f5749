// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Basis3 is a 3×3 rotation matrix: orthonormal columns, determinant +1.
// The zero value is not a rotation; use Identity3 or a constructor.
type Basis3[T scalar.Float] struct {
	m mat.Mat3[T]
}

// Identity3 returns the null rotation.
func Identity3[T scalar.Float]() Basis3[T] { return Basis3[T]{m: mat.Identity3[T]()} }

// FromQuat returns the matrix of q (renormalized).
func FromQuat[T scalar.Float](q quat.Quat[T]) Basis3[T] { return Basis3[T]{m: q.ToMat3()} }

// FromAxisAngle returns the rotation by theta about the unit axis.
func FromAxisAngle[T scalar.Float](axis vec.Vec3[T], theta angle.Rad[T]) Basis3[T] {
	return AxisAngle[T]{Axis: axis, Angle: theta}.ToBasis3()
}

// FromEuler returns the matrix of e.
func FromEuler[T scalar.Float](e Euler[T]) Basis3[T] { return e.ToBasis3() }

// FromAngleX returns the rotation by theta about +X.
func FromAngleX[T scalar.Float](theta angle.Rad[T]) Basis3[T] { return Basis3[T]{m: principal(0, theta)} }

// FromAngleY returns the rotation by theta about +Y.
func FromAngleY[T scalar.Float](theta angle.Rad[T]) Basis3[T] { return Basis3[T]{m: principal(1, theta)} }

// FromAngleZ returns the rotation by theta about +Z.
func FromAngleZ[T scalar.Float](theta angle.Rad[T]) Basis3[T] { return Basis3[T]{m: principal(2, theta)} }

// LookAt returns the rotation mapping dir onto +Z with up in the +Y half
// plane. up must not be parallel to dir.
func LookAt[T scalar.Float](dir, up vec.Vec3[T]) Basis3[T] { return Basis3[T]{m: mat.LookAt3(dir, up)} }

// BetweenVectors returns the shortest-arc rotation taking unit a onto unit b.
func BetweenVectors[T scalar.Float](a, b vec.Vec3[T]) Basis3[T] {
	return FromQuat(quat.BetweenVectors(a, b))
}

// Unchecked3 wraps m without validation. The caller guarantees m is a
// rotation; nothing downstream re-checks it.
func Unchecked3[T scalar.Float](m mat.Mat3[T]) Basis3[T] { return Basis3[T]{m: m} }

// Mat3 returns a copy of the underlying matrix.
func (b Basis3[T]) Mat3() mat.Mat3[T] { return b.m }

// ToMat3 is Mat3; it lets Basis3 satisfy Rotation3.
func (b Basis3[T]) ToMat3() mat.Mat3[T] { return b.m }

// ToQuat converts to a unit quaternion.
func (b Basis3[T]) ToQuat() quat.Quat[T] { return quat.FromMat3(b.m) }

// ToEuler extracts Euler angles in the given order.
func (b Basis3[T]) ToEuler(order Order) Euler[T] { return EulerFromMat3(b.m, order) }

// RotateVec applies the rotation to v.
func (b Basis3[T]) RotateVec(v vec.Vec3[T]) vec.Vec3[T] { return b.m.MulVec(v) }

// RotatePoint rotates p about the origin.
func (b Basis3[T]) RotatePoint(p vec.Point3[T]) vec.Point3[T] {
	return vec.Point3FromVec(b.m.MulVec(p.ToVec()))
}

// Compose returns the rotation applying o first, then b. The product is
// not re-orthonormalized.
func (b Basis3[T]) Compose(o Basis3[T]) Basis3[T] { return Basis3[T]{m: b.m.Mul(o.m)} }

// Invert returns the transpose.
func (b Basis3[T]) Invert() Basis3[T] { return Basis3[T]{m: b.m.Transpose()} }

// Orthonormalize applies Gram–Schmidt to the columns:
//
//	c₀' = c₀/|c₀|
//	c₁' = normalize(c₁ − (c₁·c₀')c₀')
//	c₂' = c₀' × c₁'
//
// The third column is rebuilt from the cross product, so the result is
// right-handed even when c₂ had flipped.
func (b Basis3[T]) Orthonormalize() Basis3[T] {
	c0 := b.m.Col(0).Normalize()
	c1 := b.m.Col(1)
	c1 = c1.Sub(c0.Scale(c1.Dot(c0))).Normalize()
	return Basis3[T]{m: mat.FromCols3(c0, c1, c0.Cross(c1))}
}

// OrthonormalityError returns max |(MᵀM − I)ᵢⱼ|.
func (b Basis3[T]) OrthonormalityError() T { return b.m.OrthonormalityError() }

// IsValid reports whether b is a rotation within the resolved epsilon.
func (b Basis3[T]) IsValid(opts ...scalar.Option) bool { return b.m.IsRotation(opts...) }

// ApproxEqual compares element-wise.
func (b Basis3[T]) ApproxEqual(o Basis3[T], opts ...scalar.Option) bool {
	return b.m.ApproxEqual(o.m, opts...)
}

// String implements fmt.Stringer.
func (b Basis3[T]) String() string { return "Basis3" + b.m.String() }
