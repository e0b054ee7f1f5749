// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Decomposed2 is the planar scale → rotate → translate transform.
type Decomposed2[T scalar.Float] struct {
	Scale T
	Rot   rotation.Basis2[T]
	Disp  vec.Vec2[T]
}

// New2 builds a Decomposed2.
func New2[T scalar.Float](scale T, rot rotation.Basis2[T], disp vec.Vec2[T]) Decomposed2[T] {
	return Decomposed2[T]{Scale: scale, Rot: rot, Disp: disp}
}

// Identity2 returns the identity planar transform.
func Identity2[T scalar.Float]() Decomposed2[T] {
	return Decomposed2[T]{Scale: 1, Rot: rotation.Identity2[T]()}
}

// LookAt2 returns the planar view transform of an observer at eye facing
// center: eye maps to the origin and center onto the +Y axis.
func LookAt2[T scalar.Float](eye, center vec.Point2[T]) Decomposed2[T] {
	rot := rotation.LookAt2(center.Sub(eye))
	return Decomposed2[T]{Scale: 1, Rot: rot, Disp: rot.RotateVec(eye.ToVec().Neg())}
}

// TransformPoint returns R(s·p) + d.
func (t Decomposed2[T]) TransformPoint(p vec.Point2[T]) vec.Point2[T] {
	return t.Rot.RotatePoint(p.Scale(t.Scale)).AddVec(t.Disp)
}

// TransformVector returns R(s·v); displacement does not apply to vectors.
func (t Decomposed2[T]) TransformVector(v vec.Vec2[T]) vec.Vec2[T] {
	return t.Rot.RotateVec(v.Scale(t.Scale))
}

// Compose returns the transform applying o first, then t.
func (t Decomposed2[T]) Compose(o Decomposed2[T]) Decomposed2[T] {
	return Decomposed2[T]{
		Scale: t.Scale * o.Scale,
		Rot:   t.Rot.Compose(o.Rot),
		Disp:  t.TransformVector(o.Disp).Add(t.Disp),
	}
}

// Invert returns the inverse transform, or ErrSingularScale.
func (t Decomposed2[T]) Invert() (Decomposed2[T], error) {
	if err := validateScale(t.Scale); err != nil {
		return Decomposed2[T]{}, transformErrorf(opInvert2, err)
	}
	inv := 1 / t.Scale
	rot := t.Rot.Invert()
	return Decomposed2[T]{
		Scale: inv,
		Rot:   rot,
		Disp:  rot.RotateVec(t.Disp).Scale(-inv),
	}, nil
}

// ToMat3 returns the homogeneous 3×3 matrix of t.
func (t Decomposed2[T]) ToMat3() mat.Mat3[T] {
	r := t.Rot.Mat2().Scale(t.Scale)
	return mat.Mat3[T]{
		r[0], r[1], t.Disp.X,
		r[2], r[3], t.Disp.Y,
		0, 0, 1,
	}
}

// ApproxEqual compares scale, rotation angle and displacement.
func (t Decomposed2[T]) ApproxEqual(o Decomposed2[T], opts ...scalar.Option) bool {
	return scalar.ApproxEqual(t.Scale, o.Scale, opts...) &&
		t.Disp.ApproxEqual(o.Disp, opts...) &&
		t.Rot.ApproxEqual(o.Rot, opts...)
}

// String implements fmt.Stringer.
func (t Decomposed2[T]) String() string {
	return fmt.Sprintf("Decomposed2{scale: %v, angle: %v, disp: %v}", t.Scale, t.Rot.Angle().Deg(), t.Disp)
}
