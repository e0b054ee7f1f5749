// Package mat provides fixed-size square matrices (2×2, 3×3, 4×4) as plain
// value types for the rotation and transform layers.
//
// Layout & conventions:
//   - Row-major storage: m[N*r + c] is row r, column c. This is the same
//     layout as golang.org/x/image/math/f32, so conversion is a copy.
//   - Column vectors; matrices act on the left: v' = M·v.
//   - a.Mul(b) applies b first, then a.
//
// Only Invert can fail; it returns ErrSingular (or ErrNaNInf) wrapped with
// the operation tag so callers match with errors.Is.
package mat
