// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Vec3 is a three-dimensional vector.
type Vec3[T scalar.Float] struct{ X, Y, Z T }

// V3 builds a Vec3.
func V3[T scalar.Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// UnitX returns (1, 0, 0).
func UnitX[T scalar.Float]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// UnitY returns (0, 1, 0).
func UnitY[T scalar.Float]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// UnitZ returns (0, 0, 1).
func UnitZ[T scalar.Float]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Axis returns the unit vector of axis i (0=X, 1=Y, 2=Z).
func Axis[T scalar.Float](i int) Vec3[T] {
	var v Vec3[T]
	v.setAt(i, 1)
	return v
}

// Add returns the component-wise sum.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div divides every component by s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Neg negates every component.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// MulElem returns the component-wise product.
func (v Vec3[T]) MulElem(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the inner product.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len2 returns the squared length.
func (v Vec3[T]) Len2() T { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec3[T]) Len() T { return scalar.Sqrt(v.Len2()) }

// Normalize returns v/|v|. A zero vector is a contract violation and yields
// non-finite components.
func (v Vec3[T]) Normalize() Vec3[T] { return v.Scale(1 / v.Len()) }

// Lerp returns v + (o - v)·t.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] { return v.Add(o.Sub(v).Scale(t)) }

// At returns component i (0=X, 1=Y, 2=Z). Panics on any other index.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vec: Vec3 index %d out of range", i))
}

func (v *Vec3[T]) setAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic(fmt.Sprintf("vec: Vec3 index %d out of range", i))
	}
}

// With returns a copy of v with component i replaced by x.
func (v Vec3[T]) With(i int, x T) Vec3[T] {
	v.setAt(i, x)
	return v
}

// Extend appends w.
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// Truncate drops Z.
func (v Vec3[T]) Truncate() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// ApproxEqual compares component-wise.
func (v Vec3[T]) ApproxEqual(o Vec3[T], opts ...scalar.Option) bool {
	eps := scalar.Resolve[T](opts...)
	return scalar.ApproxEqualEps(v.X, o.X, eps) &&
		scalar.ApproxEqualEps(v.Y, o.Y, eps) &&
		scalar.ApproxEqualEps(v.Z, o.Z, eps)
}

// String implements fmt.Stringer.
func (v Vec3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }
