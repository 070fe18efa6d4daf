// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/report"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "yaml" | "cbor"
	LogLevel string // zerolog level name
}

// NewRootCommand creates the root command for the linsys CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "linsys",
		Short: "linsys - linear equations solver",
		Long: `Solve n×n linear systems by Gauss elimination or Gauss-Jordan reduction.

Every system is classified as having a unique solution, no solution, or
infinitely many solutions; the last case is reported in parametric form.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := report.ParseFormat(opts.Format); err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, report.Formats))
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logs, one event per step)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml|cbor)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", DefaultLogLevel, "log level on stderr (debug|info|warn|error)")

	// Add subcommands
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewInteractiveCommand(opts))

	return cmd
}

// formatter builds the output formatter for a command run.
func formatter(opts *RootOptions, cmd *cobra.Command) (*OutputFormatter, error) {
	f, err := report.ParseFormat(opts.Format)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid format", err)
	}
	return &OutputFormatter{
		Format:    f,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}, nil
}
