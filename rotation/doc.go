// Package rotation provides the human-facing rotation representations
// (Euler angles, axis-angle) and the orthonormal rotation matrices Basis2
// and Basis3, together with conversions among them and quat.Quat.
//
// Euler angles:
//
//	Euler{X, Y, Z, Order} stores one angle per principal axis and the order
//	in which the three extrinsic (fixed-frame) rotations are applied. The
//	default order XYZ rotates about X first, then Y, then Z:
//
//	    R = Rz(Z)·Ry(Y)·Rx(X),  q = qz·qy·qx
//
//	Extraction (EulerFromMat3, EulerFromQuat) returns the first and last
//	angles in (-π, π] and the middle angle in [-π/2, π/2]. When the middle
//	angle reaches ±90° (gimbal lock) the first and last axes align and only
//	their combination is recoverable: the last angle is set to 0 and the
//	first absorbs the whole combined rotation. The reconstructed rotation
//	still matches the input; the triple is canonical, not unique.
//
// Rotation matrices:
//
//	Basis2 and Basis3 can only be built from validated sources (an angle, a
//	quaternion, an axis-angle, Euler angles, LookAt) or through the explicit
//	Unchecked2/Unchecked3 escape hatch, which is never re-validated.
//	Compose does not re-orthonormalize; call Orthonormalize periodically
//	when chaining many compositions and watch OrthonormalityError.
//
// Both quat.Quat and Basis3 satisfy Rotation3, so generic code such as
// transform.Decomposed3 works with either representation.
package rotation
