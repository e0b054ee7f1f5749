// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vec"
)

// Vec3ToSDFX converts v to an sdfx vector.
func Vec3ToSDFX[T scalar.Float](v vec.Vec3[T]) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Vec3FromSDFX converts an sdfx vector to Vec3[T].
func Vec3FromSDFX[T scalar.Float](v v3.Vec) vec.Vec3[T] { return vec.V3(T(v.X), T(v.Y), T(v.Z)) }

// M44FromDecomposed3 returns the sdfx matrix Translate·Rotate·Scale of t.
// sdfx applies matrices to column vectors like lvgeom, so
// M44FromDecomposed3(t).MulPosition(p) matches t.TransformPoint(p).
func M44FromDecomposed3[T scalar.Float, R rotation.Rotation3[T, R]](t transform.Decomposed3[T, R]) sdf.M44 {
	axis, theta := t.Rot.ToQuat().ToAxisAngle()
	s := float64(t.Scale)
	return sdf.Translate3d(Vec3ToSDFX(t.Disp)).
		Mul(sdf.Rotate3d(Vec3ToSDFX(axis), float64(theta.Value()))).
		Mul(sdf.Scale3d(v3.Vec{X: s, Y: s, Z: s}))
}

// M44FromAffine3 returns the sdfx matrix of a via its T·R·S decomposition.
// Shear in a is not representable and is dropped.
func M44FromAffine3[T scalar.Float](a transform.Affine3[T]) sdf.M44 {
	d, q, s := a.Decompose()
	axis, theta := q.ToAxisAngle()
	return sdf.Translate3d(Vec3ToSDFX(d)).
		Mul(sdf.Rotate3d(Vec3ToSDFX(axis), float64(theta.Value()))).
		Mul(sdf.Scale3d(Vec3ToSDFX(s)))
}

// M44FromEuler builds the rotation of e from sdfx's principal rotations,
// last-applied axis leftmost: XYZ is RotateZ·RotateY·RotateX.
func M44FromEuler[T scalar.Float](e rotation.Euler[T]) sdf.M44 {
	i, j, k := e.Order.Axes()
	return sdfRotate(k, float64(e.Angle(k).Value())).
		Mul(sdfRotate(j, float64(e.Angle(j).Value()))).
		Mul(sdfRotate(i, float64(e.Angle(i).Value())))
}

// PlaceSDF3 positions the solid s with the rigid-or-uniform transform t.
func PlaceSDF3[T scalar.Float, R rotation.Rotation3[T, R]](s sdf.SDF3, t transform.Decomposed3[T, R]) sdf.SDF3 {
	return sdf.Transform3D(s, M44FromDecomposed3(t))
}

func sdfRotate(axis int, a float64) sdf.M44 {
	switch axis {
	case 0:
		return sdf.RotateX(a)
	case 1:
		return sdf.RotateY(a)
	default:
		return sdf.RotateZ(a)
	}
}
