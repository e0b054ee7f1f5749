// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/katalvlaran/lvgeom/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type rootOpts struct {
	logLevel  string
	logFormat string
	workers   int

	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{log: logging.Nop()}

	cmd := &cobra.Command{
		Use:          "rotconv",
		Short:        "Convert and combine 3D rotations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", logging.EncodingConsole, "log encoding: json or console")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent jobs for batch (0 uses the job file or the CPU count)")

	cmd.AddCommand(
		newConvertCommand(opts),
		newBatchCommand(opts),
	)
	return cmd
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
