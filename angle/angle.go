// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Rad is an angle measured in radians.
type Rad[T scalar.Float] struct{ v T }

// Deg is an angle measured in degrees.
type Deg[T scalar.Float] struct{ v T }

// Angle is satisfied by both units; use it where a caller may hold either.
type Angle[T scalar.Float] interface {
	Rad() Rad[T]
	Deg() Deg[T]
}

var (
	_ Angle[float64] = Rad[float64]{}
	_ Angle[float64] = Deg[float64]{}
)

// Radians tags x as radians.
func Radians[T scalar.Float](x T) Rad[T] { return Rad[T]{x} }

// Degrees tags x as degrees.
func Degrees[T scalar.Float](x T) Deg[T] { return Deg[T]{x} }

// ToRad converts any Angle into radians.
func ToRad[T scalar.Float](a Angle[T]) Rad[T] { return a.Rad() }

// ---------- Rad ----------

// Value returns the raw scalar in radians.
func (r Rad[T]) Value() T { return r.v }

// Rad returns r unchanged.
func (r Rad[T]) Rad() Rad[T] { return r }

// Deg converts r to degrees.
func (r Rad[T]) Deg() Deg[T] { return Deg[T]{T(float64(r.v) * (180 / math.Pi))} }

// Add returns r + o.
func (r Rad[T]) Add(o Rad[T]) Rad[T] { return Rad[T]{r.v + o.v} }

// Sub returns r - o.
func (r Rad[T]) Sub(o Rad[T]) Rad[T] { return Rad[T]{r.v - o.v} }

// Neg returns -r.
func (r Rad[T]) Neg() Rad[T] { return Rad[T]{-r.v} }

// Scale returns r·s.
func (r Rad[T]) Scale(s T) Rad[T] { return Rad[T]{r.v * s} }

// Div returns r/s.
func (r Rad[T]) Div(s T) Rad[T] { return Rad[T]{r.v / s} }

// Ratio returns the dimensionless quotient r/o.
func (r Rad[T]) Ratio(o Rad[T]) T { return r.v / o.v }

// Rem returns the remainder of r/o with the sign of r.
func (r Rad[T]) Rem(o Rad[T]) Rad[T] { return Rad[T]{scalar.Mod(r.v, o.v)} }

// Normalize maps r into [0, 2π).
func (r Rad[T]) Normalize() Rad[T] { return Rad[T]{normalize(r.v, T(2*math.Pi))} }

// NormalizeSigned maps r into [-π, π).
func (r Rad[T]) NormalizeSigned() Rad[T] { return Rad[T]{normalizeSigned(r.v, T(2*math.Pi))} }

// Opposite returns r rotated by half a turn, normalized.
func (r Rad[T]) Opposite() Rad[T] { return r.Add(RadHalfTurn[T]()).Normalize() }

// Bisect returns the interior bisector of r and o, normalized.
func (r Rad[T]) Bisect(o Rad[T]) Rad[T] { return r.Add(o.Sub(r).Scale(0.5)).Normalize() }

// Equiv reports whether r and o denote the same direction after normalization.
func (r Rad[T]) Equiv(o Rad[T], opts ...scalar.Option) bool {
	return equiv(r.v, o.v, T(2*math.Pi), opts...)
}

// ApproxEqual compares the raw values (no normalization).
func (r Rad[T]) ApproxEqual(o Rad[T], opts ...scalar.Option) bool {
	return scalar.ApproxEqual(r.v, o.v, opts...)
}

// String renders "x rad".
func (r Rad[T]) String() string { return fmt.Sprintf("%v rad", r.v) }

// ---------- Deg ----------

// Value returns the raw scalar in degrees.
func (d Deg[T]) Value() T { return d.v }

// Rad converts d to radians.
func (d Deg[T]) Rad() Rad[T] { return Rad[T]{T(float64(d.v) * (math.Pi / 180))} }

// Deg returns d unchanged.
func (d Deg[T]) Deg() Deg[T] { return d }

// Add returns d + o.
func (d Deg[T]) Add(o Deg[T]) Deg[T] { return Deg[T]{d.v + o.v} }

// Sub returns d - o.
func (d Deg[T]) Sub(o Deg[T]) Deg[T] { return Deg[T]{d.v - o.v} }

// Neg returns -d.
func (d Deg[T]) Neg() Deg[T] { return Deg[T]{-d.v} }

// Scale returns d·s.
func (d Deg[T]) Scale(s T) Deg[T] { return Deg[T]{d.v * s} }

// Div returns d/s.
func (d Deg[T]) Div(s T) Deg[T] { return Deg[T]{d.v / s} }

// Ratio returns the dimensionless quotient d/o.
func (d Deg[T]) Ratio(o Deg[T]) T { return d.v / o.v }

// Rem returns the remainder of d/o with the sign of d.
func (d Deg[T]) Rem(o Deg[T]) Deg[T] { return Deg[T]{scalar.Mod(d.v, o.v)} }

// Normalize maps d into [0, 360).
func (d Deg[T]) Normalize() Deg[T] { return Deg[T]{normalize(d.v, 360)} }

// NormalizeSigned maps d into [-180, 180).
func (d Deg[T]) NormalizeSigned() Deg[T] { return Deg[T]{normalizeSigned(d.v, 360)} }

// Opposite returns d rotated by half a turn, normalized.
func (d Deg[T]) Opposite() Deg[T] { return d.Add(DegHalfTurn[T]()).Normalize() }

// Bisect returns the interior bisector of d and o, normalized.
func (d Deg[T]) Bisect(o Deg[T]) Deg[T] { return d.Add(o.Sub(d).Scale(0.5)).Normalize() }

// Equiv reports whether d and o denote the same direction after normalization.
func (d Deg[T]) Equiv(o Deg[T], opts ...scalar.Option) bool {
	return equiv(d.v, o.v, 360, opts...)
}

// ApproxEqual compares the raw values (no normalization).
func (d Deg[T]) ApproxEqual(o Deg[T], opts ...scalar.Option) bool {
	return scalar.ApproxEqual(d.v, o.v, opts...)
}

// String renders "x°".
func (d Deg[T]) String() string { return fmt.Sprintf("%v°", d.v) }

// ---------- helpers ----------

func normalize[T scalar.Float](v, full T) T {
	v = scalar.Mod(v, full)
	if v < 0 {
		v += full
	}
	// v+full can round up to exactly full for tiny negative v.
	if v >= full {
		v = 0
	}
	return v
}

func normalizeSigned[T scalar.Float](v, full T) T {
	half := full / 2
	return normalize(v+half, full) - half
}

// equiv compares on the circle so that values straddling the wrap point
// (e.g. 359.9999999° and 0°) still match.
func equiv[T scalar.Float](a, b, full T, opts ...scalar.Option) bool {
	d := normalizeSigned(a-b, full)
	return scalar.ApproxZero(d, opts...)
}
