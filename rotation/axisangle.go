// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// AxisAngle is a rotation by Angle about the unit vector Axis.
type AxisAngle[T scalar.Float] struct {
	Axis  vec.Vec3[T]
	Angle angle.Rad[T]
}

// NewAxisAngle normalizes axis; the zero vector is a contract violation.
func NewAxisAngle[T scalar.Float](axis vec.Vec3[T], a angle.Rad[T]) AxisAngle[T] {
	return AxisAngle[T]{Axis: axis.Normalize(), Angle: a}
}

// AxisAngleFromQuat returns the canonical axis-angle of q: angle in [0, π],
// identity mapped to (+X, 0).
func AxisAngleFromQuat[T scalar.Float](q quat.Quat[T]) AxisAngle[T] {
	axis, a := q.ToAxisAngle()
	return AxisAngle[T]{Axis: axis, Angle: a}
}

// ToQuat returns quat.FromAxisAngle(a.Axis, a.Angle).
func (a AxisAngle[T]) ToQuat() quat.Quat[T] { return quat.FromAxisAngle(a.Axis, a.Angle) }

// ToMat3 evaluates Rodrigues' formula R = cI + s[u]ₓ + (1−c)uuᵀ.
func (a AxisAngle[T]) ToMat3() mat.Mat3[T] {
	s, c := angle.SinCos(a.Angle)
	t := 1 - c
	x, y, z := a.Axis.X, a.Axis.Y, a.Axis.Z
	return mat.Mat3[T]{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s,
		x*y*t + z*s, c + y*y*t, y*z*t - x*s,
		x*z*t - y*s, y*z*t + x*s, c + z*z*t,
	}
}

// ToBasis3 returns the rotation as an orthonormal matrix.
func (a AxisAngle[T]) ToBasis3() Basis3[T] { return Basis3[T]{m: a.ToMat3()} }

// RotateVec applies the rotation to v.
func (a AxisAngle[T]) RotateVec(v vec.Vec3[T]) vec.Vec3[T] { return a.ToQuat().RotateVec(v) }

// String implements fmt.Stringer.
func (a AxisAngle[T]) String() string { return fmt.Sprintf("%v about %v", a.Angle.Deg(), a.Axis) }
