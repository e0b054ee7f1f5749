package transform_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vec"
)

// ExampleDecomposed3_Invert scales by 2, turns a quarter about Z, moves by
// +10 on X, then undoes it.
func ExampleDecomposed3_Invert() {
	tr := transform.New3(2.0, quat.FromAngleZ(angle.Degrees(90.0).Rad()), vec.V3(10.0, 0.0, 0.0))

	p := tr.TransformPoint(vec.P3(1.0, 0.0, 0.0))
	fmt.Printf("forward: [%.1f, %.1f, %.1f]\n", p.X, p.Y, p.Z)

	inv, err := tr.Invert()
	if err != nil {
		fmt.Println(err)
		return
	}
	back := inv.TransformPoint(p)
	fmt.Println("round trip:", back.ApproxEqual(vec.P3(1.0, 0.0, 0.0)))
	// Output:
	// forward: [10.0, 2.0, 0.0]
	// round trip: true
}
