// Package quat implements the quaternion, the canonical rotation
// representation of lvgeom.
//
// A Quat{S, V} is the number S + V.X·i + V.Y·j + V.Z·k. Any quaternion is a
// valid algebraic value (sums, scaled copies and interpolation intermediates
// are routinely non-unit), but only unit quaternions represent rotations.
// Functions that consume a rotation document whether they renormalize:
//
//   - ToMat3, ToMat4, ToAxisAngle renormalize first.
//   - RotateVec, RotatePoint, Compose, Slerp assume unit input.
//
// Conventions:
//
//   - Right-handed; a positive angle about an axis is counter-clockwise when
//     looking from the tip of the axis toward the origin.
//   - a.Compose(b) (the Hamilton product a·b) applies b first, then a.
//     This matches mat.Mat3.Mul, so a.Compose(b).ToMat3() equals
//     a.ToMat3().Mul(b.ToMat3()).
//   - q and -q represent the same rotation; use SameRotation to compare
//     rotations rather than components.
//
// Interpolation:
//
//	Slerp takes the shorter great-circle arc (one operand is negated when the
//	dot product is negative) and falls back to Nlerp when the inputs are
//	nearly parallel (dot > DefaultSlerpThreshold, tunable via
//	WithSlerpThreshold), where sin(θ) in the denominator would vanish.
//
// Degenerate inputs (a zero quaternion passed to Normalize or Invert, a
// non-unit axis passed to FromAxisAngle) are contract violations: the
// result is unspecified and no error is returned.
package quat
