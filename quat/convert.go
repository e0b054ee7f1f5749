// SPDX-License-Identifier: MIT

package quat

import (
	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// FromAxisAngle returns (cos(θ/2), sin(θ/2)·axis): the rotation by θ about
// axis, counter-clockwise looking down the axis. axis must be unit length;
// this is not checked.
func FromAxisAngle[T scalar.Float](axis vec.Vec3[T], theta angle.Rad[T]) Quat[T] {
	s, c := angle.SinCos(theta.Div(2))
	return Quat[T]{S: c, V: axis.Scale(s)}
}

// FromAngleX, FromAngleY and FromAngleZ rotate about a principal axis.
func FromAngleX[T scalar.Float](theta angle.Rad[T]) Quat[T] {
	return FromAxisAngle(vec.UnitX[T](), theta)
}

// FromAngleY returns the rotation by theta about +Y.
func FromAngleY[T scalar.Float](theta angle.Rad[T]) Quat[T] {
	return FromAxisAngle(vec.UnitY[T](), theta)
}

// FromAngleZ returns the rotation by theta about +Z.
func FromAngleZ[T scalar.Float](theta angle.Rad[T]) Quat[T] {
	return FromAxisAngle(vec.UnitZ[T](), theta)
}

// ToAxisAngle returns the unit axis and the angle in [0, π] of the rotation
// represented by q. q is renormalized first, then sign-canonicalized to
// S >= 0 so that q and -q give the same answer.
//
// The identity rotation has no defined axis; it yields (+X, 0).
func (q Quat[T]) ToAxisAngle() (vec.Vec3[T], angle.Rad[T]) {
	q = q.Normalize()
	if q.S < 0 {
		q = q.Neg()
	}
	n := q.V.Len()
	if n == 0 {
		return vec.UnitX[T](), angle.Radians[T](0)
	}
	return q.V.Div(n), angle.Atan2(n, q.S).Scale(2)
}

// ToMat3 returns the rotation matrix of q after renormalization.
//
//	⎡1−2(y²+z²)  2(xy−wz)    2(xz+wy)  ⎤
//	⎢2(xy+wz)    1−2(x²+z²)  2(yz−wx)  ⎥
//	⎣2(xz−wy)    2(yz+wx)    1−2(x²+y²)⎦
func (q Quat[T]) ToMat3() mat.Mat3[T] {
	q = q.Normalize()
	w, x, y, z := q.S, q.V.X, q.V.Y, q.V.Z

	x2, y2, z2 := x+x, y+y, z+z
	xx, yy, zz := x*x2, y*y2, z*z2
	xy, xz, yz := x*y2, x*z2, y*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return mat.Mat3[T]{
		1 - (yy + zz), xy - wz, xz + wy,
		xy + wz, 1 - (xx + zz), yz - wx,
		xz - wy, yz + wx, 1 - (xx + yy),
	}
}

// ToMat4 embeds ToMat3 in an affine 4×4 matrix with zero translation.
func (q Quat[T]) ToMat4() mat.Mat4[T] { return q.ToMat3().ToMat4() }

// FromMat3 extracts the unit quaternion of the rotation matrix m.
// m must be a rotation (orthonormal, det +1); it is not validated.
//
// Implementation:
//   - Selects among four algebraically equivalent formulas by the largest
//     of trace, m00, m11 and m22 (Shepperd), so the square root is always
//     taken of a value >= 1 and the divisions never approach zero.
//   - The result is renormalized to absorb drift in m.
func FromMat3[T scalar.Float](m mat.Mat3[T]) Quat[T] {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	var q Quat[T]
	tr := m00 + m11 + m22
	switch {
	case tr > 0:
		s := 2 * scalar.Sqrt(tr+1)
		q = New(s/4, (m21-m12)/s, (m02-m20)/s, (m10-m01)/s)
	case m00 > m11 && m00 > m22:
		s := 2 * scalar.Sqrt(1+m00-m11-m22)
		q = New((m21-m12)/s, s/4, (m01+m10)/s, (m02+m20)/s)
	case m11 > m22:
		s := 2 * scalar.Sqrt(1+m11-m00-m22)
		q = New((m02-m20)/s, (m01+m10)/s, s/4, (m12+m21)/s)
	default:
		s := 2 * scalar.Sqrt(1+m22-m00-m11)
		q = New((m10-m01)/s, (m02+m20)/s, (m12+m21)/s, s/4)
	}
	return q.Normalize()
}

// BetweenVectors returns the shortest-arc rotation taking the unit vector a
// onto the unit vector b.
//
// The half-angle form (1 + a·b, a×b) is used down to separations of
// Epsilon[T] from opposite. Closer than that the inputs count as
// antiparallel, which has infinitely many shortest arcs: a half turn about
// an axis orthogonal to a is returned.
func BetweenVectors[T scalar.Float](a, b vec.Vec3[T]) Quat[T] {
	d := a.Dot(b)
	c := a.Cross(b)
	if eps := scalar.Epsilon[T](); d < 0 && c.Len2() <= eps*eps {
		axis := a.Cross(vec.UnitX[T]())
		if axis.Len2() < scalar.SingularityTolerance[T]() {
			axis = a.Cross(vec.UnitY[T]())
		}
		return Quat[T]{S: 0, V: axis.Normalize()}
	}
	return Quat[T]{S: 1 + d, V: c}.Normalize()
}

// LookAt returns the rotation that maps dir onto +Z and up into the +Y
// half of the YZ plane (see mat.LookAt3). up must not be parallel to dir.
func LookAt[T scalar.Float](dir, up vec.Vec3[T]) Quat[T] {
	return FromMat3(mat.LookAt3(dir, up))
}
