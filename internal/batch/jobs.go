// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/internal/config"
	"github.com/katalvlaran/lvgeom/quat"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/transform"
	"github.com/katalvlaran/lvgeom/vec"
)

// Evaluate runs a single job. unit is config.UnitDeg or config.UnitRad and
// order is the Euler order used for rotations without their own order and
// for the Euler view of the result.
//
// compose applies the rotations in the order listed: the first one acts on
// a vector first. transform builds scale, then rotate, then translate and
// maps every point through it (or through its inverse with invert: true).
func Evaluate(job config.Job, unit string, order rotation.Order) (Result, error) {
	qs := make([]quat.Quat[float64], len(job.Rotations))
	for i := range job.Rotations {
		q, err := Quat(job.Rotations[i], unit, order)
		if err != nil {
			return Result{}, fmt.Errorf("rotation %d: %w", i, err)
		}
		qs[i] = q
	}

	switch job.Kind {
	case config.KindConvert:
		if len(qs) != 1 {
			return Result{}, fmt.Errorf("%w: convert takes 1 rotation", config.ErrBadInput)
		}
		return Describe(job.Name, job.Kind, qs[0], unit, order), nil

	case config.KindCompose:
		if len(qs) < 2 {
			return Result{}, fmt.Errorf("%w: compose takes at least 2 rotations", config.ErrBadInput)
		}
		acc := qs[0]
		for _, q := range qs[1:] {
			acc = q.Compose(acc)
		}
		return Describe(job.Name, job.Kind, acc.Normalize(), unit, order), nil

	case config.KindSlerp:
		if len(qs) != 2 {
			return Result{}, fmt.Errorf("%w: slerp takes 2 rotations", config.ErrBadInput)
		}
		return Describe(job.Name, job.Kind, quat.Slerp(qs[0], qs[1], job.T), unit, order), nil

	case config.KindTransform:
		return evalTransform(job, qs, unit, order)

	default:
		return Result{}, fmt.Errorf("%w: %q", config.ErrUnknownKind, job.Kind)
	}
}

func evalTransform(job config.Job, qs []quat.Quat[float64], unit string, order rotation.Order) (Result, error) {
	rot := quat.Identity[float64]()
	if len(qs) > 0 {
		rot = qs[0]
	}
	scale := 1.0
	if job.Scale != nil {
		scale = *job.Scale
	}
	var disp vec.Vec3[float64]
	if len(job.Translate) == 3 {
		disp = vec.V3(job.Translate[0], job.Translate[1], job.Translate[2])
	}

	t := transform.New3(scale, rot, disp)
	if job.Invert {
		inv, err := t.Invert()
		if err != nil {
			return Result{}, err
		}
		t = inv
	}

	res := Describe(job.Name, job.Kind, t.Rot, unit, order)
	res.Matrix = rows4(t.ToMat4())
	res.Points = make([][]float64, 0, len(job.Points))
	for k, p := range job.Points {
		if len(p) != 3 {
			return Result{}, fmt.Errorf("%w: point %d needs 3 components", config.ErrBadInput, k)
		}
		res.Points = append(res.Points, point(t.TransformPoint(vec.P3(p[0], p[1], p[2]))))
	}
	return res, nil
}

// Quat converts a configured rotation to a unit quaternion.
func Quat(r config.Rotation, unit string, order rotation.Order) (quat.Quat[float64], error) {
	if err := r.Validate(); err != nil {
		return quat.Quat[float64]{}, err
	}
	if !allFinite(r.Euler) || !allFinite(r.AxisAngle) || !allFinite(r.Quat) {
		return quat.Quat[float64]{}, fmt.Errorf("%w: non-finite component", config.ErrBadInput)
	}

	switch {
	case r.Euler != nil:
		if r.Order != "" {
			o, err := rotation.ParseOrder(r.Order)
			if err != nil {
				return quat.Quat[float64]{}, fmt.Errorf("%w: %w", config.ErrBadInput, err)
			}
			order = o
		}
		return rotation.QuatFromEuler(
			toRad(r.Euler[0], unit),
			toRad(r.Euler[1], unit),
			toRad(r.Euler[2], unit),
			order,
		), nil
	case r.AxisAngle != nil:
		axis := vec.V3(r.AxisAngle[0], r.AxisAngle[1], r.AxisAngle[2])
		return rotation.NewAxisAngle(axis, toRad(r.AxisAngle[3], unit)).ToQuat(), nil
	default:
		return quat.New(r.Quat[0], r.Quat[1], r.Quat[2], r.Quat[3]).Normalize(), nil
	}
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if !scalar.IsFinite(x) {
			return false
		}
	}
	return true
}
