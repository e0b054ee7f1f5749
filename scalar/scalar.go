// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"
)

// Float is the capability set a scalar type must satisfy: field arithmetic
// and ordering through the operator type set, plus the transcendental
// functions declared in this package.
type Float interface {
	~float32 | ~float64
}

// Width-dependent numeric policy.
const (
	// Epsilon32 is the default approximate-equality tolerance for 32-bit scalars.
	Epsilon32 = 1e-5

	// Epsilon64 is the default approximate-equality tolerance for 64-bit scalars.
	Epsilon64 = 1e-9

	// Singularity32 bounds |sin| distance from 1 below which a 32-bit
	// conversion is treated as singular (gimbal lock, antiparallel vectors).
	Singularity32 = 1e-4

	// Singularity64 is the 64-bit counterpart of Singularity32.
	Singularity64 = 1e-7
)

// Is32 reports whether T is a 32-bit scalar.
func Is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Epsilon returns the default approximate-equality tolerance for T.
func Epsilon[T Float]() T {
	if Is32[T]() {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// SingularityTolerance returns the tolerance used to detect degenerate
// configurations (for example |sin(pitch)| ≈ 1 in Euler extraction).
func SingularityTolerance[T Float]() T {
	if Is32[T]() {
		return T(Singularity32)
	}
	return T(Singularity64)
}

// Pi returns π rounded to T.
func Pi[T Float]() T { return T(math.Pi) }

// FromFloat64 converts a double-precision value into T.
func FromFloat64[T Float](x float64) T { return T(x) }

// ToFloat64 widens x to float64.
func ToFloat64[T Float](x T) float64 { return float64(x) }

// Convert changes the scalar width of x.
func Convert[From, To Float](x From) To { return To(x) }

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of x (radians).
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// SinCos returns sin(x) and cos(x) from a single call.
func SinCos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Asin returns the arcsine of x. Inputs outside [-1, 1] yield NaN; callers
// that may overshoot through rounding should Clamp first.
func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine of x. See Asin for the domain note.
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Atan returns the arctangent of x.
func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

// Atan2 returns the arctangent of y/x using the signs of both to pick the quadrant.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Hypot returns sqrt(p*p + q*q) without undue overflow.
func Hypot[T Float](p, q T) T { return T(math.Hypot(float64(p), float64(q))) }

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod[T Float](x, y T) T { return T(math.Mod(float64(x), float64(y))) }

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign[T Float](x, y T) T { return T(math.Copysign(float64(x), float64(y))) }

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of x and y.
func Min[T Float](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T Float](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp limits x to [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
