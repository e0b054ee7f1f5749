// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec2 is a two-dimensional vector.
type Vec2[T scalar.Float] struct{ X, Y T }

// V2 builds a Vec2.
func V2[T scalar.Float](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// UnitX2 returns (1, 0).
func UnitX2[T scalar.Float]() Vec2[T] { return Vec2[T]{1, 0} }

// UnitY2 returns (0, 1).
func UnitY2[T scalar.Float]() Vec2[T] { return Vec2[T]{0, 1} }

// Add returns the component-wise sum.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div divides every component by s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Neg negates every component.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// MulElem returns the component-wise product.
func (v Vec2[T]) MulElem(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }

// Dot returns the inner product.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product (v, 0) × (o, 0).
func (v Vec2[T]) Cross(o Vec2[T]) T { return v.X*o.Y - v.Y*o.X }

// Perp returns v rotated by +90°.
func (v Vec2[T]) Perp() Vec2[T] { return Vec2[T]{-v.Y, v.X} }

// Len2 returns the squared length.
func (v Vec2[T]) Len2() T { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec2[T]) Len() T { return scalar.Sqrt(v.Len2()) }

// Normalize returns v/|v|. A zero vector is a contract violation and yields
// non-finite components.
func (v Vec2[T]) Normalize() Vec2[T] { return v.Scale(1 / v.Len()) }

// Lerp returns v + (o - v)·t.
func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] { return v.Add(o.Sub(v).Scale(t)) }

// Extend appends z.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

// ApproxEqual compares component-wise.
func (v Vec2[T]) ApproxEqual(o Vec2[T], opts ...scalar.Option) bool {
	eps := scalar.Resolve[T](opts...)
	return scalar.ApproxEqualEps(v.X, o.X, eps) && scalar.ApproxEqualEps(v.Y, o.Y, eps)
}

// String implements fmt.Stringer.
func (v Vec2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }
