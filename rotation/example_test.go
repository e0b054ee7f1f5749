package rotation_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/vec"
)

// ExampleEulerFromQuat shows the canonical answer at gimbal lock: with the
// pitch at 90° only X − Z is recoverable, so Z is reported as 0.
func ExampleEulerFromQuat() {
	q := rotation.QuatFromEuler(
		angle.Degrees(30.0).Rad(),
		angle.Degrees(90.0).Rad(),
		angle.Degrees(20.0).Rad(),
		rotation.XYZ,
	)
	e := rotation.EulerFromQuat(q, rotation.XYZ)
	fmt.Printf("x=%.1f y=%.1f z=%.1f\n", e.X.Deg().Value(), e.Y.Deg().Value(), e.Z.Deg().Value())
	// Output:
	// x=10.0 y=90.0 z=0.0
}

func ExampleBasis2_Invert() {
	b := rotation.FromAngle(angle.Degrees(30.0).Rad())
	fmt.Printf("%.1f\n", b.Invert().Angle().Deg().Value())
	// Output:
	// -30.0
}

func ExampleBasis3_Orthonormalize() {
	step := rotation.FromAngleY(angle.Degrees[float32](1).Rad())
	b := rotation.Identity3[float32]()
	for i := 0; i < 360; i++ {
		b = b.Compose(step)
	}
	b = b.Orthonormalize()
	v := b.RotateVec(vec.UnitX[float32]())
	fmt.Println(b.IsValid(), v.ApproxEqual(vec.UnitX[float32](), rotationTolerance))
	// Output:
	// true true
}
