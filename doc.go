// Package lvgeom is a small rotation and transform kernel: angles, vectors,
// matrices, quaternions, Euler angles, rotation bases and scale-rotate-
// translate transforms, generic over float32 and float64.
//
// 🚀 What is lvgeom?
//
//	A pure, allocation-free math library that brings together:
//		• Scalars: the Float constraint, tolerances and approximate equality
//		• Angles: typed radians & degrees, normalization, trig helpers
//		• Vectors & points: Vec2/3/4, Point2/3, dot, cross, lerp
//		• Matrices: Mat2/3/4, row-major, column-vector convention
//		• Quaternions: Hamilton product, Slerp (shortest arc), matrix round trips
//		• Rotations: Euler angles in all six orders with gimbal-lock handling,
//		  axis-angle, Basis2/Basis3 with explicit re-orthonormalization
//		• Transforms: Decomposed2/3 (uniform scale) and Affine3 (any scale)
//
// ✨ Conventions
//
//   - Right-handed coordinates, column vectors: v' = M·v
//   - a.Compose(b) applies b first, then a
//   - Euler angles are extrinsic; XYZ means X first, then Y, then Z
//   - Tolerances come from scalar.Epsilon unless overridden per call
//
// Everything is organized under these subpackages:
//
//	scalar/     — Float constraint, epsilon policy, ApproxEqual
//	angle/      — Rad, Deg, turns, trig
//	vec/        — vectors and points
//	mat/        — 2×2, 3×3, 4×4 matrices, Invert, LookAt3
//	quat/       — unit quaternions, Slerp/Nlerp, axis-angle and matrix conversions
//	rotation/   — Euler, AxisAngle, Basis2, Basis3, the Rotation3 interface
//	transform/  — Decomposed2, Decomposed3, Affine3
//	converters/ — bridges to gonum quaternions, x/image/math/f32 and sdfx
//	cmd/rotconv — CLI converting rotations one at a time or from YAML job files
//
// Quick example, a quarter turn about Z:
//
//	q := quat.FromAxisAngle(vec.UnitZ[float64](), angle.Degrees(90.0).Rad())
//	q.RotateVec(vec.UnitX[float64]()) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
