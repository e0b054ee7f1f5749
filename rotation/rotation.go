// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vec"
)

// Rotation3 is the operator contract shared by quat.Quat and Basis3.
// R is the implementing type itself, so Compose and Invert stay within one
// representation.
type Rotation3[T scalar.Float, R any] interface {
	RotateVec(v vec.Vec3[T]) vec.Vec3[T]
	RotatePoint(p vec.Point3[T]) vec.Point3[T]
	Compose(o R) R
	Invert() R
	ToQuat() quat.Quat[T]
	ToMat3() mat.Mat3[T]
}

var (
	_ Rotation3[float64, quat.Quat[float64]] = quat.Quat[float64]{}
	_ Rotation3[float32, Basis3[float32]]    = Basis3[float32]{}
)
