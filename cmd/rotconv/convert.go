// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/internal/batch"
	"github.com/katalvlaran/lvgeom/internal/config"
	"github.com/katalvlaran/lvgeom/rotation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type convertOpts struct {
	euler     []float64
	axisAngle []float64
	quat      []float64
	inOrder   string
	order     string
	unit      string
}

func (o *convertOpts) addFlags(fs *pflag.FlagSet) {
	fs.Float64SliceVar(&o.euler, "euler", nil, "Euler angles x,y,z")
	fs.Float64SliceVar(&o.axisAngle, "axis-angle", nil, "axis and angle x,y,z,angle")
	fs.Float64SliceVar(&o.quat, "quat", nil, "quaternion w,x,y,z (normalized on input)")
	fs.StringVar(&o.inOrder, "euler-order", "", "order of --euler (defaults to --order)")
	fs.StringVar(&o.order, "order", rotation.DefaultOrder.String(), "Euler order of the output")
	fs.StringVarP(&o.unit, "unit", "u", config.UnitDeg, "angle unit: deg or rad")
}

func (o *convertOpts) toRotation() config.Rotation {
	return config.Rotation{
		Euler:     o.euler,
		Order:     o.inOrder,
		AxisAngle: o.axisAngle,
		Quat:      o.quat,
	}
}

func newConvertCommand(root *rootOpts) *cobra.Command {
	opts := &convertOpts{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print every representation of one rotation",
		Long: `Convert a single rotation given as exactly one of --euler, --axis-angle
or --quat, and print its quaternion, Euler angles, axis-angle and matrix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := rotation.ParseOrder(opts.order)
			if err != nil {
				return err
			}
			if opts.unit != config.UnitDeg && opts.unit != config.UnitRad {
				return fmt.Errorf("%w: unit %q", config.ErrBadInput, opts.unit)
			}

			r := opts.toRotation()
			if r.Euler != nil && r.Order == "" {
				r.Order = order.String()
			}
			job := config.Job{Name: "convert", Kind: config.KindConvert, Rotations: []config.Rotation{r}}
			res, err := batch.Evaluate(job, opts.unit, order)
			if err != nil {
				return err
			}
			root.log.Debug("converted", zap.Any("quat", res.Quat), zap.String("order", res.Order))
			return writeYAML(cmd.OutOrStdout(), res)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}
