// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/internal/batch"
	"github.com/katalvlaran/lvgeom/internal/config"
	"github.com/spf13/cobra"
)

// errJobsFailed makes the command exit non-zero after printing results when
// some jobs failed.
var errJobsFailed = errors.New("rotconv: some jobs failed")

type batchOpts struct {
	failFast bool
}

func newBatchCommand(root *rootOpts) *cobra.Command {
	opts := &batchOpts{}

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run a YAML job file (\"-\" reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				f   *config.File
				err error
			)
			if args[0] == "-" {
				f, err = config.Load(cmd.InOrStdin())
			} else {
				f, err = config.LoadFile(args[0])
			}
			if err != nil {
				return err
			}

			runner := batch.New(
				batch.WithLogger(root.log),
				batch.WithWorkers(root.workers),
				batch.WithFailFast(opts.failFast),
			)
			results, err := runner.Run(cmd.Context(), f)
			if err != nil {
				return err
			}
			if err := writeYAML(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			for i := range results {
				if results[i].Error != "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "job %q: %s\n", results[i].Name, results[i].Error)
					err = errJobsFailed
				}
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first failing job")
	return cmd
}
