// Package transform composes a rotation with a scale and a displacement.
//
// Every transform here is applied to points in the fixed order
//
//	scale → rotate → translate:   p' = R(s·p) + d
//
// and to vectors without the translation. t1.Compose(t2) applies t2 first,
// matching the composition order of quat.Quat and rotation.Basis3.
//
// Types:
//   - Decomposed3[T, R]: uniform scale, any rotation.Rotation3 (quat.Quat or
//     rotation.Basis3), displacement. Closed under Compose and Invert.
//   - Decomposed2[T]: the planar counterpart over rotation.Basis2.
//   - Affine3[T]: non-uniform scale, backed by a 4×4 matrix. Compose and
//     Invert are matrix operations; Decompose recovers T, R and S.
//
// Errors:
//   - ErrSingularScale when inverting a transform whose scale is zero or
//     non-finite. Errors are wrapped with the operation name; match with
//     errors.Is.
package transform
