// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec4 is a four-dimensional (usually homogeneous) vector.
type Vec4[T scalar.Float] struct{ X, Y, Z, W T }

// V4 builds a Vec4.
func V4[T scalar.Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Add returns the component-wise sum.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns the component-wise difference.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Neg negates every component.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns the inner product.
func (v Vec4[T]) Dot(o Vec4[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// Len2 returns the squared length.
func (v Vec4[T]) Len2() T { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec4[T]) Len() T { return scalar.Sqrt(v.Len2()) }

// Normalize returns v/|v|.
func (v Vec4[T]) Normalize() Vec4[T] { return v.Scale(1 / v.Len()) }

// Truncate drops W.
func (v Vec4[T]) Truncate() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// ApproxEqual compares component-wise.
func (v Vec4[T]) ApproxEqual(o Vec4[T], opts ...scalar.Option) bool {
	eps := scalar.Resolve[T](opts...)
	return scalar.ApproxEqualEps(v.X, o.X, eps) &&
		scalar.ApproxEqualEps(v.Y, o.Y, eps) &&
		scalar.ApproxEqualEps(v.Z, o.Z, eps) &&
		scalar.ApproxEqualEps(v.W, o.W, eps)
}

// String implements fmt.Stringer.
func (v Vec4[T]) String() string { return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W) }
