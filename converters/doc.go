// Package converters provides two-way adapters between lvgeom value types
// and popular Go geometry libraries:
//   - gonum.org/v1/gonum/num/quat (quaternion numbers)
//   - golang.org/x/image/math/f32 (row-major float32 vectors, matrices, affines)
//   - github.com/deadsy/sdfx (3D vectors, 4×4 transforms, SDF placement)
//
// Use converters to hand rotations and transforms built with lvgeom to
// renderers, solvers and CAD kernels, or to import their values back.
// Conversions copy; nothing aliases the source.
package converters
