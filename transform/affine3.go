// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Affine3 is a scale → rotate → translate transform whose scale may differ
// per axis. It is stored as the 4×4 matrix T·R·S.
//
// Unlike Decomposed3, the inverse and compositions of non-uniform
// transforms are generally not of the T·R·S form (they shear); Affine3 keeps
// the full matrix and Decompose recovers T, R, S only for matrices that are.
type Affine3[T scalar.Float] struct {
	m mat.Mat4[T]
}

// IdentityAffine3 returns the identity transform.
func IdentityAffine3[T scalar.Float]() Affine3[T] { return Affine3[T]{m: mat.Identity4[T]()} }

// FromTRS builds T(translation)·R(rot)·S(scale). rot is renormalized.
func FromTRS[T scalar.Float](translation vec.Vec3[T], rot quat.Quat[T], scale vec.Vec3[T]) Affine3[T] {
	r := rot.ToMat3()
	return Affine3[T]{m: mat.Mat4[T]{
		r[0] * scale.X, r[1] * scale.Y, r[2] * scale.Z, translation.X,
		r[3] * scale.X, r[4] * scale.Y, r[5] * scale.Z, translation.Y,
		r[6] * scale.X, r[7] * scale.Y, r[8] * scale.Z, translation.Z,
		0, 0, 0, 1,
	}}
}

// FromMat4 wraps an affine matrix.
//
// Errors:
//   - ErrNotAffine when the bottom row differs from (0, 0, 0, 1) beyond
//     the resolved epsilon.
func FromMat4[T scalar.Float](m mat.Mat4[T], opts ...scalar.Option) (Affine3[T], error) {
	if !m.IsAffine(opts...) {
		return Affine3[T]{}, transformErrorf(opFromMat4, ErrNotAffine)
	}
	m[12], m[13], m[14], m[15] = 0, 0, 0, 1
	return Affine3[T]{m: m}, nil
}

// LookAtAffine3 returns the view transform of LookAt3 as a matrix: eye maps
// to the origin and center onto the +Z axis.
func LookAtAffine3[T scalar.Float](eye, center vec.Point3[T], up vec.Vec3[T]) Affine3[T] {
	return LookAt3(eye, center, up).ToAffine()
}

// Mat4 returns a copy of the matrix.
func (a Affine3[T]) Mat4() mat.Mat4[T] { return a.m }

// TransformPoint maps p through the matrix, translation included.
func (a Affine3[T]) TransformPoint(p vec.Point3[T]) vec.Point3[T] { return a.m.MulPoint(p) }

// TransformVector maps v through the linear part only.
func (a Affine3[T]) TransformVector(v vec.Vec3[T]) vec.Vec3[T] { return a.m.MulDir(v) }

// Compose returns the transform applying o first, then a.
func (a Affine3[T]) Compose(o Affine3[T]) Affine3[T] { return Affine3[T]{m: a.m.Mul(o.m)} }

// Invert returns the inverse transform.
//
// Errors:
//   - ErrSingularScale, also wrapping mat.ErrSingular or mat.ErrNaNInf,
//     when the linear part cannot be inverted.
func (a Affine3[T]) Invert() (Affine3[T], error) {
	inv, err := a.m.Invert()
	if err != nil {
		return Affine3[T]{}, fmt.Errorf("%s: %w: %w", opAffineInvert, ErrSingularScale, err)
	}
	return Affine3[T]{m: inv}, nil
}

// Decompose splits a into translation, rotation and per-axis scale so that
// FromTRS(Decompose()) reproduces a. The scale is the length of each column
// of the linear part; a reflection (negative determinant) is folded into a
// negative X scale. Matrices with shear decompose approximately: the
// rotation is the nearest one found by orthonormalizing the columns.
//
// A zero scale on any axis leaves the rotation undetermined on that axis.
func (a Affine3[T]) Decompose() (translation vec.Vec3[T], rot quat.Quat[T], scale vec.Vec3[T]) {
	lin := a.m.Mat3()
	translation = a.m.Translation()

	c0, c1, c2 := lin.Col(0), lin.Col(1), lin.Col(2)
	scale = vec.Vec3[T]{X: c0.Len(), Y: c1.Len(), Z: c2.Len()}
	if lin.Determinant() < 0 {
		scale.X = -scale.X
	}

	c0 = c0.Div(scale.X)
	c1 = c1.Sub(c0.Scale(c1.Dot(c0))).Normalize()
	c2 = c0.Cross(c1)
	rot = quat.FromMat3(mat.FromCols3(c0, c1, c2))
	return translation, rot, scale
}

// ApproxEqual compares the matrices element-wise.
func (a Affine3[T]) ApproxEqual(o Affine3[T], opts ...scalar.Option) bool {
	return a.m.ApproxEqual(o.m, opts...)
}

// String implements fmt.Stringer.
func (a Affine3[T]) String() string { return "Affine3" + a.m.String() }
