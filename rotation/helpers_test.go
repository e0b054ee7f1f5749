package rotation_test

import "github.com/katalvlaran/lvgeom/scalar"

func scalarEps(eps float64) scalar.Option { return scalar.WithEpsilon(eps) }

var rotationTolerance = scalarEps(1e-4)
