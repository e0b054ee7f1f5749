// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Mat2 is a 2×2 matrix in row-major order: m[2*r + c].
type Mat2[T scalar.Float] [4]T

// Identity2 returns I₂.
func Identity2[T scalar.Float]() Mat2[T] { return Mat2[T]{1, 0, 0, 1} }

// FromCols2 builds a matrix whose columns are c0 and c1.
func FromCols2[T scalar.Float](c0, c1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{c0.X, c1.X, c0.Y, c1.Y}
}

// FromRows2 builds a matrix whose rows are r0 and r1.
func FromRows2[T scalar.Float](r0, r1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0.X, r0.Y, r1.X, r1.Y}
}

// At returns the element at row r, column c.
func (m Mat2[T]) At(r, c int) T { return m[2*r+c] }

// Row returns row r.
func (m Mat2[T]) Row(r int) vec.Vec2[T] { return vec.Vec2[T]{X: m[2*r], Y: m[2*r+1]} }

// Col returns column c.
func (m Mat2[T]) Col(c int) vec.Vec2[T] { return vec.Vec2[T]{X: m[c], Y: m[2+c]} }

// Trace returns the sum of the diagonal.
func (m Mat2[T]) Trace() T { return m[0] + m[3] }

// Determinant returns m00·m11 - m01·m10.
func (m Mat2[T]) Determinant() T { return m[0]*m[3] - m[1]*m[2] }

// Transpose swaps rows and columns.
func (m Mat2[T]) Transpose() Mat2[T] { return Mat2[T]{m[0], m[2], m[1], m[3]} }

// Scale multiplies every component by s.
func (m Mat2[T]) Scale(s T) Mat2[T] { return Mat2[T]{m[0] * s, m[1] * s, m[2] * s, m[3] * s} }

// Add returns the component-wise sum.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] { return Mat2[T]{m[0] + o[0], m[1] + o[1], m[2] + o[2], m[3] + o[3]} }

// Sub returns the component-wise difference.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] { return Mat2[T]{m[0] - o[0], m[1] - o[1], m[2] - o[2], m[3] - o[3]} }

// Mul returns m·o (o is applied first).
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return vec.Vec2[T]{X: m[0]*v.X + m[1]*v.Y, Y: m[2]*v.X + m[3]*v.Y}
}

// Invert returns m⁻¹, or ErrSingular/ErrNaNInf.
func (m Mat2[T]) Invert() (Mat2[T], error) {
	det := m.Determinant()
	if err := validateDeterminant(det); err != nil {
		return Mat2[T]{}, matErrorf(opInvert2, err)
	}
	inv := 1 / det
	return Mat2[T]{m[3] * inv, -m[1] * inv, -m[2] * inv, m[0] * inv}, nil
}

// IsIdentity reports whether m ≈ I₂.
func (m Mat2[T]) IsIdentity(opts ...scalar.Option) bool {
	return m.ApproxEqual(Identity2[T](), opts...)
}

// OrthonormalityError returns max |(mᵀm − I)ᵢⱼ|.
func (m Mat2[T]) OrthonormalityError() T { return orthonormalityError(m[:], 2) }

// IsOrthonormal reports whether the columns are orthonormal within epsilon.
func (m Mat2[T]) IsOrthonormal(opts ...scalar.Option) bool {
	return m.OrthonormalityError() <= scalar.Resolve[T](opts...)
}

// ApproxEqual compares element-wise.
func (m Mat2[T]) ApproxEqual(o Mat2[T], opts ...scalar.Option) bool {
	return approxEqualSlice(m[:], o[:], opts...)
}

// String implements fmt.Stringer.
func (m Mat2[T]) String() string { return fmt.Sprintf("[%v %v; %v %v]", m[0], m[1], m[2], m[3]) }
