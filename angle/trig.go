// SPDX-License-Identifier: MIT

package angle

import "github.com/katalvlaran/lvgeom/scalar"

// Sin returns sin(θ).
func Sin[T scalar.Float](theta Rad[T]) T { return scalar.Sin(theta.v) }

// Cos returns cos(θ).
func Cos[T scalar.Float](theta Rad[T]) T { return scalar.Cos(theta.v) }

// Tan returns tan(θ).
func Tan[T scalar.Float](theta Rad[T]) T { return scalar.Tan(theta.v) }

// SinCos returns sin(θ) and cos(θ).
func SinCos[T scalar.Float](theta Rad[T]) (T, T) { return scalar.SinCos(theta.v) }

// Cot returns 1/tan(θ).
func Cot[T scalar.Float](theta Rad[T]) T { return 1 / Tan(theta) }

// Sec returns 1/cos(θ).
func Sec[T scalar.Float](theta Rad[T]) T { return 1 / Cos(theta) }

// Csc returns 1/sin(θ).
func Csc[T scalar.Float](theta Rad[T]) T { return 1 / Sin(theta) }

// Asin returns arcsin(s) in [-π/2, π/2]. The argument is clamped to [-1, 1]
// so values that overshoot through rounding do not produce NaN.
func Asin[T scalar.Float](s T) Rad[T] { return Rad[T]{scalar.Asin(scalar.Clamp(s, -1, 1))} }

// Acos returns arccos(s) in [0, π], clamping s to [-1, 1].
func Acos[T scalar.Float](s T) Rad[T] { return Rad[T]{scalar.Acos(scalar.Clamp(s, -1, 1))} }

// Atan returns arctan(s) in (-π/2, π/2).
func Atan[T scalar.Float](s T) Rad[T] { return Rad[T]{scalar.Atan(s)} }

// Atan2 returns the angle of the point (x, y) in (-π, π].
func Atan2[T scalar.Float](y, x T) Rad[T] { return Rad[T]{scalar.Atan2(y, x)} }
