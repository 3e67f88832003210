// Package cli implements ledgerctl, the operator CLI for the usage ledger:
// schema migrations, aggregate reports and aggregate verification.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/waxworks/internal/clock"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the ledgerctl root command. open connects to the
// store; clk supplies "today" for commands that default to it.
func NewRootCommand(open Opener, clk clock.Clock, version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Operate the waxworks usage ledger",
		Long:          "Apply migrations, report token usage aggregates and verify them against the event log.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(NewMigrateCommand(opts, open))
	cmd.AddCommand(NewTotalsCommand(opts, open))
	cmd.AddCommand(NewBudgetCommand(opts, open))
	cmd.AddCommand(NewVerifyCommand(opts, open, clk))

	return cmd
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
