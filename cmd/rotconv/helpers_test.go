package main

import "github.com/katalvlaran/lvgeom/angle"

func deg(d float64) angle.Rad[float64] { return angle.Degrees(d).Rad() }
