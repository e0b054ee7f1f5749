// Package scalar declares the numeric capability contract that every
// vector, matrix, quaternion and rotation type in lvgeom is written against.
//
// 🚀 What is in the contract?
//
//	A scalar type S participates in the algebra when it provides:
//	  • field arithmetic (+, −, ×, ÷) and total ordering (<, ≤, …)
//	  • square root and trigonometry (sin, cos, tan, asin, acos, atan2)
//	  • a fixed epsilon for approximate equality
//	  • lossless-enough conversion to and from float64 for interop
//
// In Go the first capability is expressed by the Float type set
// (~float32 | ~float64): the operators come for free and are checked at
// compile time. The transcendental capabilities are expressed as generic
// functions in this package (Sqrt, SinCos, Atan2, …), so a kernel written
// once against Float is instantiated for both widths without any dynamic
// dispatch.
//
// ⚙️ Usage:
//
//	func length[T scalar.Float](x, y T) T { return scalar.Sqrt(x*x + y*y) }
//
//	scalar.ApproxEqual(0.1+0.2, 0.3)                         // true
//	scalar.ApproxEqual(a, b, scalar.WithEpsilon(1e-3))       // looser check
//
// Numeric policy:
//   - Equality is never exact: ApproxEqual uses a width-dependent epsilon
//     (float32: 1e-5, float64: 1e-9) scaled by max(1, |a|, |b|).
//   - Transcendentals are evaluated in float64 and rounded back, so float32
//     callers get correctly rounded results rather than float32 drift.
package scalar
