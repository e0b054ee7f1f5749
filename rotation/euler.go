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

// Euler is a rotation expressed as three extrinsic rotations about the
// principal axes. X, Y and Z hold the angle about each axis; Order says which
// is applied first.
type Euler[T scalar.Float] struct {
	X, Y, Z angle.Rad[T]
	Order   Order
}

// NewEuler builds an Euler triple. Pass DefaultOrder when unsure.
func NewEuler[T scalar.Float](x, y, z angle.Rad[T], order Order) Euler[T] {
	return Euler[T]{X: x, Y: y, Z: z, Order: order}
}

// QuatFromEuler returns the unit quaternion of the extrinsic rotations
// x, y, z (about X, Y, Z) applied in the given order. For XYZ this is
// qz·qy·qx: the last-applied rotation is the leftmost factor.
func QuatFromEuler[T scalar.Float](x, y, z angle.Rad[T], order Order) quat.Quat[T] {
	return NewEuler(x, y, z, order).ToQuat()
}

// Angle returns the angle about the given axis (0=X, 1=Y, 2=Z).
func (e Euler[T]) Angle(axis int) angle.Rad[T] {
	switch axis {
	case 0:
		return e.X
	case 1:
		return e.Y
	case 2:
		return e.Z
	}
	panic(fmt.Sprintf("rotation: Euler.Angle: axis %d out of range", axis))
}

func (e *Euler[T]) setAngle(axis int, a angle.Rad[T]) {
	switch axis {
	case 0:
		e.X = a
	case 1:
		e.Y = a
	default:
		e.Z = a
	}
}

// ToQuat composes the three axis quaternions in order.
func (e Euler[T]) ToQuat() quat.Quat[T] {
	i, j, k := e.Order.Axes()
	qi := quat.FromAxisAngle(vec.Axis[T](i), e.Angle(i))
	qj := quat.FromAxisAngle(vec.Axis[T](j), e.Angle(j))
	qk := quat.FromAxisAngle(vec.Axis[T](k), e.Angle(k))
	return qk.Compose(qj).Compose(qi)
}

// ToMat3 multiplies the three principal rotation matrices in order,
// without going through a quaternion.
func (e Euler[T]) ToMat3() mat.Mat3[T] {
	i, j, k := e.Order.Axes()
	return principal(k, e.Angle(k)).Mul(principal(j, e.Angle(j))).Mul(principal(i, e.Angle(i)))
}

// ToBasis3 returns the rotation as an orthonormal matrix.
func (e Euler[T]) ToBasis3() Basis3[T] { return Basis3[T]{m: e.ToMat3()} }

// Reorder re-expresses the same rotation in another order.
func (e Euler[T]) Reorder(order Order) Euler[T] { return EulerFromMat3(e.ToMat3(), order) }

// ApproxEqual compares the three angles component-wise (not modulo 2π) and
// requires equal orders. Compare rotations via ToQuat().SameRotation.
func (e Euler[T]) ApproxEqual(o Euler[T], opts ...scalar.Option) bool {
	return e.Order == o.Order &&
		e.X.ApproxEqual(o.X, opts...) &&
		e.Y.ApproxEqual(o.Y, opts...) &&
		e.Z.ApproxEqual(o.Z, opts...)
}

// String implements fmt.Stringer.
func (e Euler[T]) String() string {
	return fmt.Sprintf("Euler%s(%v, %v, %v)", e.Order, e.X.Deg(), e.Y.Deg(), e.Z.Deg())
}

// EulerFromQuat extracts the Euler triple of q in the given order.
// q is renormalized first. See EulerFromMat3 for the gimbal-lock rule.
func EulerFromQuat[T scalar.Float](q quat.Quat[T], order Order) Euler[T] {
	return EulerFromMat3(q.ToMat3(), order)
}

// EulerFromMat3 extracts the Euler triple of the rotation matrix m in the
// given order (first, second, third axes i, j, k; R = Rk·Rj·Ri).
//
// Implementation:
//   - p = +1 for cyclic orders, −1 otherwise.
//   - second = asin(−p·R[k][i]), clamped into asin's domain.
//   - first  = atan2(p·R[k][j], R[k][k]),  third = atan2(p·R[j][i], R[i][i]).
//   - Gimbal lock, |R[k][i]| > 1 − scalar.SingularityTolerance: cos(second)
//     is ~0 and the formulas above degenerate into atan2(0, 0). third is
//     set to 0 and first = atan2(−p·R[j][k], R[j][j]) carries the combined
//     rotation, so the triple still reproduces m.
//
// The result never contains NaN for a finite rotation matrix.
func EulerFromMat3[T scalar.Float](m mat.Mat3[T], order Order) Euler[T] {
	i, j, k := order.Axes()
	p := T(order.parity())
	at := func(r, c int) T { return m[3*r+c] }

	e := Euler[T]{Order: order}
	sinMid := -p * at(k, i)
	e.setAngle(j, angle.Asin(sinMid))

	if scalar.Abs(sinMid) > 1-scalar.SingularityTolerance[T]() {
		e.setAngle(i, angle.Atan2(-p*at(j, k), at(j, j)))
		e.setAngle(k, angle.Radians[T](0))
		return e
	}
	e.setAngle(i, angle.Atan2(p*at(k, j), at(k, k)))
	e.setAngle(k, angle.Atan2(p*at(j, i), at(i, i)))
	return e
}

// principal returns the rotation matrix about axis 0, 1 or 2.
func principal[T scalar.Float](axis int, theta angle.Rad[T]) mat.Mat3[T] {
	s, c := angle.SinCos(theta)
	switch axis {
	case 0:
		return mat.Mat3[T]{
			1, 0, 0,
			0, c, -s,
			0, s, c,
		}
	case 1:
		return mat.Mat3[T]{
			c, 0, s,
			0, 1, 0,
			-s, 0, c,
		}
	default:
		return mat.Mat3[T]{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		}
	}
}
