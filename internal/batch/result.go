// SPDX-License-Identifier: MIT

package batch

import (
	"math"

	"github.com/katalvlaran/lvgeom/angle"
	"github.com/katalvlaran/lvgeom/internal/config"
	"github.com/katalvlaran/lvgeom/mat"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/vec"
)

// Result is the YAML view of one evaluated job. Angles use the unit of the
// job file.
type Result struct {
	Name      string      `yaml:"name"`
	Kind      string      `yaml:"kind"`
	Quat      []float64   `yaml:"quat,omitempty,flow"`
	Euler     []float64   `yaml:"euler,omitempty,flow"`
	Order     string      `yaml:"order,omitempty"`
	AxisAngle []float64   `yaml:"axis_angle,omitempty,flow"`
	Matrix    [][]float64 `yaml:"matrix,omitempty,flow"`
	Points    [][]float64 `yaml:"points,omitempty,flow"`
	Error     string      `yaml:"error,omitempty"`
}

// Describe fills every rotation view of q.
func Describe(name, kind string, q quat.Quat[float64], unit string, order rotation.Order) Result {
	e := rotation.EulerFromQuat(q, order)
	axis, theta := q.ToAxisAngle()
	return Result{
		Name:      name,
		Kind:      kind,
		Quat:      roundAll(q.S, q.V.X, q.V.Y, q.V.Z),
		Euler:     roundAll(fromRad(e.X.Value(), unit), fromRad(e.Y.Value(), unit), fromRad(e.Z.Value(), unit)),
		Order:     order.String(),
		AxisAngle: roundAll(axis.X, axis.Y, axis.Z, fromRad(theta.Value(), unit)),
		Matrix:    rows3(q.ToMat3()),
	}
}

func rows3(m mat.Mat3[float64]) [][]float64 {
	out := make([][]float64, 3)
	for r := range out {
		row := m.Row(r)
		out[r] = roundAll(row.X, row.Y, row.Z)
	}
	return out
}

func rows4(m mat.Mat4[float64]) [][]float64 {
	out := make([][]float64, 4)
	for r := range out {
		row := m.Row(r)
		out[r] = roundAll(row.X, row.Y, row.Z, row.W)
	}
	return out
}

func point(p vec.Point3[float64]) []float64 { return roundAll(p.X, p.Y, p.Z) }

func toRad(x float64, unit string) angle.Rad[float64] {
	if unit == config.UnitDeg {
		return angle.Degrees(x).Rad()
	}
	return angle.Radians(x)
}

func fromRad(x float64, unit string) float64 {
	if unit == config.UnitDeg {
		return angle.Radians(x).Deg().Value()
	}
	return x
}

// roundAll trims float noise below 1e-12 and folds -0 into 0 so the YAML
// output stays readable.
func roundAll(xs ...float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		r := math.Round(x*1e12) / 1e12
		if r == 0 {
			r = 0
		}
		out[i] = r
	}
	return out
}
