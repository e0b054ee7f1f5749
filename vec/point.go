// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Point2 is a position in the plane.
type Point2[T scalar.Float] struct{ X, Y T }

// Point3 is a position in space.
type Point3[T scalar.Float] struct{ X, Y, Z T }

// P2 builds a Point2.
func P2[T scalar.Float](x, y T) Point2[T] { return Point2[T]{x, y} }

// P3 builds a Point3.
func P3[T scalar.Float](x, y, z T) Point3[T] { return Point3[T]{x, y, z} }

// Origin3 returns (0, 0, 0).
func Origin3[T scalar.Float]() Point3[T] { return Point3[T]{} }

// Point2FromVec reinterprets a displacement from the origin as a position.
func Point2FromVec[T scalar.Float](v Vec2[T]) Point2[T] { return Point2[T]{v.X, v.Y} }

// Point3FromVec reinterprets a displacement from the origin as a position.
func Point3FromVec[T scalar.Float](v Vec3[T]) Point3[T] { return Point3[T]{v.X, v.Y, v.Z} }

// ToVec returns the displacement of p from the origin.
func (p Point2[T]) ToVec() Vec2[T] { return Vec2[T]{p.X, p.Y} }

// AddVec translates p by v.
func (p Point2[T]) AddVec(v Vec2[T]) Point2[T] { return Point2[T]{p.X + v.X, p.Y + v.Y} }

// SubVec translates p by -v.
func (p Point2[T]) SubVec(v Vec2[T]) Point2[T] { return Point2[T]{p.X - v.X, p.Y - v.Y} }

// Sub returns the displacement from o to p.
func (p Point2[T]) Sub(o Point2[T]) Vec2[T] { return Vec2[T]{p.X - o.X, p.Y - o.Y} }

// ToVec returns the displacement of p from the origin.
func (p Point3[T]) ToVec() Vec3[T] { return Vec3[T]{p.X, p.Y, p.Z} }

// AddVec translates p by v.
func (p Point3[T]) AddVec(v Vec3[T]) Point3[T] { return Point3[T]{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// SubVec translates p by -v.
func (p Point3[T]) SubVec(v Vec3[T]) Point3[T] { return Point3[T]{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

// Sub returns the displacement from o to p.
func (p Point3[T]) Sub(o Point3[T]) Vec3[T] { return Vec3[T]{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Homogeneous returns (x, y, z, 1).
func (p Point3[T]) Homogeneous() Vec4[T] { return Vec4[T]{p.X, p.Y, p.Z, 1} }

// Scale scales p about the origin.
func (p Point3[T]) Scale(s T) Point3[T] { return Point3[T]{p.X * s, p.Y * s, p.Z * s} }

// Scale scales p about the origin.
func (p Point2[T]) Scale(s T) Point2[T] { return Point2[T]{p.X * s, p.Y * s} }

// ApproxEqual compares component-wise.
func (p Point2[T]) ApproxEqual(o Point2[T], opts ...scalar.Option) bool {
	return p.ToVec().ApproxEqual(o.ToVec(), opts...)
}

// ApproxEqual compares component-wise.
func (p Point3[T]) ApproxEqual(o Point3[T], opts ...scalar.Option) bool {
	return p.ToVec().ApproxEqual(o.ToVec(), opts...)
}

// String implements fmt.Stringer.
func (p Point2[T]) String() string { return fmt.Sprintf("[%v, %v]", p.X, p.Y) }

// String implements fmt.Stringer.
func (p Point3[T]) String() string { return fmt.Sprintf("[%v, %v, %v]", p.X, p.Y, p.Z) }
