// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vec"
	"golang.org/x/image/math/f32"
)

// f32 matrices share lvgeom's row-major layout, so matrix conversions are
// element-wise copies with a width cast.

// Vec2ToF32 narrows v to an f32.Vec2.
func Vec2ToF32[T scalar.Float](v vec.Vec2[T]) f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// Vec3ToF32 narrows v to an f32.Vec3.
func Vec3ToF32[T scalar.Float](v vec.Vec3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec4ToF32 narrows v to an f32.Vec4.
func Vec4ToF32[T scalar.Float](v vec.Vec4[T]) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// Vec2FromF32 widens an f32.Vec2 to Vec2[T].
func Vec2FromF32[T scalar.Float](v f32.Vec2) vec.Vec2[T] { return vec.V2(T(v[0]), T(v[1])) }

// Vec3FromF32 widens an f32.Vec3 to Vec3[T].
func Vec3FromF32[T scalar.Float](v f32.Vec3) vec.Vec3[T] { return vec.V3(T(v[0]), T(v[1]), T(v[2])) }

// Vec4FromF32 widens an f32.Vec4 to Vec4[T].
func Vec4FromF32[T scalar.Float](v f32.Vec4) vec.Vec4[T] {
	return vec.V4(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

// Mat3ToF32 copies m into an f32.Mat3.
func Mat3ToF32[T scalar.Float](m mat.Mat3[T]) f32.Mat3 {
	var out f32.Mat3
	for i, x := range m {
		out[i] = float32(x)
	}
	return out
}

// Mat3FromF32 copies an f32.Mat3 into mat.Mat3[T].
func Mat3FromF32[T scalar.Float](m f32.Mat3) mat.Mat3[T] {
	var out mat.Mat3[T]
	for i, x := range m {
		out[i] = T(x)
	}
	return out
}

// Mat4ToF32 copies m into an f32.Mat4.
func Mat4ToF32[T scalar.Float](m mat.Mat4[T]) f32.Mat4 {
	var out f32.Mat4
	for i, x := range m {
		out[i] = float32(x)
	}
	return out
}

// Mat4FromF32 copies an f32.Mat4 into mat.Mat4[T].
func Mat4FromF32[T scalar.Float](m f32.Mat4) mat.Mat4[T] {
	var out mat.Mat4[T]
	for i, x := range m {
		out[i] = T(x)
	}
	return out
}

// Decomposed2ToF32 returns the homogeneous 3×3 matrix of a planar transform.
func Decomposed2ToF32[T scalar.Float](t transform.Decomposed2[T]) f32.Mat3 { return Mat3ToF32(t.ToMat3()) }

// Affine3ToF32 returns the 4×4 matrix of a.
func Affine3ToF32[T scalar.Float](a transform.Affine3[T]) f32.Mat4 { return Mat4ToF32(a.Mat4()) }

// Affine3FromF32 wraps an f32 matrix as an Affine3.
//
// Errors:
//   - transform.ErrNotAffine when the bottom row is not (0, 0, 0, 1).
func Affine3FromF32[T scalar.Float](m f32.Mat4, opts ...scalar.Option) (transform.Affine3[T], error) {
	return transform.FromMat4(Mat4FromF32[T](m), opts...)
}
