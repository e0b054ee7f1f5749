// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Mat3 is a 3×3 matrix in row-major order: m[3*r + c].
type Mat3[T scalar.Float] [9]T

// Identity3 returns I₃.
func Identity3[T scalar.Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// FromRows3 builds a matrix whose rows are r0, r1, r2.
func FromRows3[T scalar.Float](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// FromCols3 builds a matrix whose columns are c0, c1, c2.
func FromCols3[T scalar.Float](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

// Diagonal3 returns diag(d.X, d.Y, d.Z).
func Diagonal3[T scalar.Float](d vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		d.X, 0, 0,
		0, d.Y, 0,
		0, 0, d.Z,
	}
}

// LookAt3 returns the rotation whose rows are (side, up', dir) for the
// normalized dir: it maps dir onto +Z and the projection of up onto +Y.
// up must not be parallel to dir.
func LookAt3[T scalar.Float](dir, up vec.Vec3[T]) Mat3[T] {
	dir = dir.Normalize()
	side := up.Cross(dir).Normalize()
	u := dir.Cross(side).Normalize()
	return FromRows3(side, u, dir)
}

// At returns the element at row r, column c.
func (m Mat3[T]) At(r, c int) T { return m[3*r+c] }

// Row returns row r.
func (m Mat3[T]) Row(r int) vec.Vec3[T] { return vec.Vec3[T]{X: m[3*r], Y: m[3*r+1], Z: m[3*r+2]} }

// Col returns column c.
func (m Mat3[T]) Col(c int) vec.Vec3[T] { return vec.Vec3[T]{X: m[c], Y: m[3+c], Z: m[6+c]} }

// Mul returns the product m·o (o is applied first).
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[3*r]*o[c] + m[3*r+1]*o[3+c] + m[3*r+2]*o[6+c]
		}
	}
	return out
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

// Scale returns s·m.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns det(m) by cofactor expansion along row 0.
func (m Mat3[T]) Determinant() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Trace returns the sum of the diagonal.
func (m Mat3[T]) Trace() T { return m[0] + m[4] + m[8] }

// Invert returns m⁻¹ via the adjugate.
//
// Errors:
//   - ErrSingular when det(m) == 0, ErrNaNInf when det(m) is not finite.
//
// Notes:
//   - For orthonormal matrices prefer Transpose; rotation.Basis3.Invert does.
func (m Mat3[T]) Invert() (Mat3[T], error) {
	det := m.Determinant()
	if err := validateDeterminant(det); err != nil {
		return Mat3[T]{}, matErrorf(opInvert3, err)
	}
	inv := 1 / det
	return Mat3[T]{
		(m[4]*m[8] - m[5]*m[7]) * inv,
		(m[2]*m[7] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,

		(m[5]*m[6] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[2]*m[6]) * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,

		(m[3]*m[7] - m[4]*m[6]) * inv,
		(m[1]*m[6] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[1]*m[3]) * inv,
	}, nil
}

// IsIdentity reports whether m ≈ I₃.
func (m Mat3[T]) IsIdentity(opts ...scalar.Option) bool {
	return m.ApproxEqual(Identity3[T](), opts...)
}

// OrthonormalityError returns max |(mᵀm − I)ᵢⱼ|: zero for a perfect rotation
// or reflection, growing as repeated products drift.
func (m Mat3[T]) OrthonormalityError() T { return orthonormalityError(m[:], 3) }

// IsOrthonormal reports whether the columns are unit length and mutually
// orthogonal within the resolved epsilon.
func (m Mat3[T]) IsOrthonormal(opts ...scalar.Option) bool {
	return m.OrthonormalityError() <= scalar.Resolve[T](opts...)
}

// IsRotation reports whether m is orthonormal with determinant +1.
func (m Mat3[T]) IsRotation(opts ...scalar.Option) bool {
	return m.IsOrthonormal(opts...) && scalar.ApproxEqual(m.Determinant(), 1, opts...)
}

// ToMat4 embeds m in the upper-left block of an affine 4×4 matrix.
func (m Mat3[T]) ToMat4() Mat4[T] {
	return Mat4[T]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// ApproxEqual compares element-wise.
func (m Mat3[T]) ApproxEqual(o Mat3[T], opts ...scalar.Option) bool {
	return approxEqualSlice(m[:], o[:], opts...)
}

// String implements fmt.Stringer.
func (m Mat3[T]) String() string {
	return fmt.Sprintf("[%v %v %v; %v %v %v; %v %v %v]", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
