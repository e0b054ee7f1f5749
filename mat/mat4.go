// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Mat4 is a 4×4 matrix in row-major order: m[4*r + c]. Affine transforms
// keep the translation in column 3 and (0, 0, 0, 1) in row 3.
type Mat4[T scalar.Float] [16]T

// Identity4 returns I₄.
func Identity4[T scalar.Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns the affine matrix that adds d to points.
func Translation[T scalar.Float](d vec.Vec3[T]) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, d.X,
		0, 1, 0, d.Y,
		0, 0, 1, d.Z,
		0, 0, 0, 1,
	}
}

// Scaling returns the affine matrix diag(s.X, s.Y, s.Z, 1).
func Scaling[T scalar.Float](s vec.Vec3[T]) Mat4[T] {
	return Mat4[T]{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4[T]) At(r, c int) T { return m[4*r+c] }

// Row returns row r.
func (m Mat4[T]) Row(r int) vec.Vec4[T] {
	return vec.Vec4[T]{X: m[4*r], Y: m[4*r+1], Z: m[4*r+2], W: m[4*r+3]}
}

// Col returns column c.
func (m Mat4[T]) Col(c int) vec.Vec4[T] {
	return vec.Vec4[T]{X: m[c], Y: m[4+c], Z: m[8+c], W: m[12+c]}
}

// Mat3 returns the upper-left 3×3 block (the linear part of an affine matrix).
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Translation returns column 3 truncated to three components.
func (m Mat4[T]) Translation() vec.Vec3[T] { return vec.Vec3[T]{X: m[3], Y: m[7], Z: m[11]} }

// Mul returns m·o (o is applied first).
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*r+c] = m[4*r]*o[c] + m[4*r+1]*o[4+c] + m[4*r+2]*o[8+c] + m[4*r+3]*o[12+c]
		}
	}
	return out
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return vec.Vec4[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms p as the homogeneous (p, 1) and divides by w.
// For affine matrices w is 1 and the division is exact.
func (m Mat4[T]) MulPoint(p vec.Point3[T]) vec.Point3[T] {
	h := m.MulVec(p.Homogeneous())
	if h.W != 1 {
		return vec.Point3[T]{X: h.X / h.W, Y: h.Y / h.W, Z: h.Z / h.W}
	}
	return vec.Point3[T]{X: h.X, Y: h.Y, Z: h.Z}
}

// MulDir transforms v as the homogeneous (v, 0): translation is ignored.
func (m Mat4[T]) MulDir(v vec.Vec3[T]) vec.Vec3[T] {
	return m.MulVec(v.Extend(0)).Truncate()
}

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// Scale returns s·m.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose returns mᵀ.
func (m Mat4[T]) Transpose() Mat4[T] {
	var out Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[4*c+r] = m[4*r+c]
		}
	}
	return out
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T { return m[0] + m[5] + m[10] + m[15] }

// Determinant returns det(m) via 2×2 sub-determinants of the top and
// bottom row pairs (Laplace expansion).
func (m Mat4[T]) Determinant() T {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Invert returns m⁻¹ using the same sub-determinants as Determinant.
//
// Implementation:
//   - Stage 1: compute the six 2×2 minors of rows 0–1 and of rows 2–3.
//   - Stage 2: det = Σ ±sᵢ·c₅₋ᵢ; reject zero / non-finite determinants.
//   - Stage 3: assemble the adjugate from the minors and scale by 1/det.
//
// Errors:
//   - ErrSingular, ErrNaNInf (wrapped with "Mat4.Invert").
//
// Complexity:
//   - Time O(1): a fixed ~100 multiplications, no pivoting.
func (m Mat4[T]) Invert() (Mat4[T], error) {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if err := validateDeterminant(det); err != nil {
		return Mat4[T]{}, matErrorf(opInvert4, err)
	}
	inv := 1 / det

	var out Mat4[T]
	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * inv
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * inv
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * inv
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * inv

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * inv
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * inv
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * inv
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * inv

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * inv
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * inv
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * inv
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * inv

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * inv
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * inv
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * inv
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * inv

	return out, nil
}

// IsIdentity reports whether m ≈ I₄.
func (m Mat4[T]) IsIdentity(opts ...scalar.Option) bool {
	return m.ApproxEqual(Identity4[T](), opts...)
}

// IsAffine reports whether row 3 is (0, 0, 0, 1) within epsilon.
func (m Mat4[T]) IsAffine(opts ...scalar.Option) bool {
	eps := scalar.Resolve[T](opts...)
	return scalar.ApproxEqualEps(m[12], 0, eps) &&
		scalar.ApproxEqualEps(m[13], 0, eps) &&
		scalar.ApproxEqualEps(m[14], 0, eps) &&
		scalar.ApproxEqualEps(m[15], 1, eps)
}

// ApproxEqual compares element-wise.
func (m Mat4[T]) ApproxEqual(o Mat4[T], opts ...scalar.Option) bool {
	return approxEqualSlice(m[:], o[:], opts...)
}

// String implements fmt.Stringer.
func (m Mat4[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}
