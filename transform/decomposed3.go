// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Decomposed3 is a uniform scale, a rotation and a displacement, applied in
// that order.
type Decomposed3[T scalar.Float, R rotation.Rotation3[T, R]] struct {
	Scale T
	Rot   R
	Disp  vec.Vec3[T]
}

// New3 builds a Decomposed3.
func New3[T scalar.Float, R rotation.Rotation3[T, R]](scale T, rot R, disp vec.Vec3[T]) Decomposed3[T, R] {
	return Decomposed3[T, R]{Scale: scale, Rot: rot, Disp: disp}
}

// Identity3 returns the identity transform over quaternions.
func Identity3[T scalar.Float]() Decomposed3[T, quat.Quat[T]] {
	return Decomposed3[T, quat.Quat[T]]{Scale: 1, Rot: quat.Identity[T]()}
}

// IdentityBasis3 returns the identity transform over rotation matrices.
func IdentityBasis3[T scalar.Float]() Decomposed3[T, rotation.Basis3[T]] {
	return Decomposed3[T, rotation.Basis3[T]]{Scale: 1, Rot: rotation.Identity3[T]()}
}

// LookAt3 returns the view transform of an observer at eye facing center:
// eye maps to the origin, center onto the +Z axis and up into the +Y half
// of the YZ plane. up must not be parallel to center - eye.
func LookAt3[T scalar.Float](eye, center vec.Point3[T], up vec.Vec3[T]) Decomposed3[T, quat.Quat[T]] {
	rot := quat.LookAt(center.Sub(eye), up)
	return Decomposed3[T, quat.Quat[T]]{Scale: 1, Rot: rot, Disp: rot.RotateVec(eye.ToVec().Neg())}
}

// LookAtBasis3 is LookAt3 over rotation matrices.
func LookAtBasis3[T scalar.Float](eye, center vec.Point3[T], up vec.Vec3[T]) Decomposed3[T, rotation.Basis3[T]] {
	rot := rotation.LookAt(center.Sub(eye), up)
	return Decomposed3[T, rotation.Basis3[T]]{Scale: 1, Rot: rot, Disp: rot.RotateVec(eye.ToVec().Neg())}
}

// TransformPoint returns R(s·p) + d.
func (t Decomposed3[T, R]) TransformPoint(p vec.Point3[T]) vec.Point3[T] {
	return t.Rot.RotatePoint(p.Scale(t.Scale)).AddVec(t.Disp)
}

// TransformVector returns R(s·v); displacement does not apply to vectors.
func (t Decomposed3[T, R]) TransformVector(v vec.Vec3[T]) vec.Vec3[T] {
	return t.Rot.RotateVec(v.Scale(t.Scale))
}

// Compose returns the transform applying o first, then t:
//
//	scale  s₁·s₂
//	rot    R₁∘R₂
//	disp   R₁(s₁·d₂) + d₁
func (t Decomposed3[T, R]) Compose(o Decomposed3[T, R]) Decomposed3[T, R] {
	return Decomposed3[T, R]{
		Scale: t.Scale * o.Scale,
		Rot:   t.Rot.Compose(o.Rot),
		Disp:  t.TransformVector(o.Disp).Add(t.Disp),
	}
}

// Compose3 is the function form of t1.Compose(t2): t2 is applied first.
func Compose3[T scalar.Float, R rotation.Rotation3[T, R]](t1, t2 Decomposed3[T, R]) Decomposed3[T, R] {
	return t1.Compose(t2)
}

// Invert returns the transform undoing t, so that
// t.Invert().TransformPoint(t.TransformPoint(p)) ≈ p:
//
//	scale  1/s
//	rot    R⁻¹
//	disp   −R⁻¹(d)/s
//
// Errors:
//   - ErrSingularScale when s is zero or not finite.
func (t Decomposed3[T, R]) Invert() (Decomposed3[T, R], error) {
	if err := validateScale(t.Scale); err != nil {
		return Decomposed3[T, R]{}, transformErrorf(opInvert3, err)
	}
	inv := 1 / t.Scale
	rot := t.Rot.Invert()
	return Decomposed3[T, R]{
		Scale: inv,
		Rot:   rot,
		Disp:  rot.RotateVec(t.Disp).Scale(-inv),
	}, nil
}

// ToMat4 returns the affine matrix T·R·S.
func (t Decomposed3[T, R]) ToMat4() mat.Mat4[T] {
	m := t.Rot.ToMat3().Scale(t.Scale).ToMat4()
	m[3], m[7], m[11] = t.Disp.X, t.Disp.Y, t.Disp.Z
	return m
}

// ToAffine widens t to an Affine3.
func (t Decomposed3[T, R]) ToAffine() Affine3[T] { return Affine3[T]{m: t.ToMat4()} }

// ApproxEqual compares scale and displacement component-wise and the
// rotations as rotations (q ≡ −q).
func (t Decomposed3[T, R]) ApproxEqual(o Decomposed3[T, R], opts ...scalar.Option) bool {
	return scalar.ApproxEqual(t.Scale, o.Scale, opts...) &&
		t.Disp.ApproxEqual(o.Disp, opts...) &&
		t.Rot.ToQuat().SameRotation(o.Rot.ToQuat(), opts...)
}

// String implements fmt.Stringer.
func (t Decomposed3[T, R]) String() string {
	return fmt.Sprintf("Decomposed3{scale: %v, rot: %v, disp: %v}", t.Scale, t.Rot, t.Disp)
}

func validateScale[T scalar.Float](s T) error {
	if s == 0 || !scalar.IsFinite(s) {
		return ErrSingularScale
	}
	return nil
}
