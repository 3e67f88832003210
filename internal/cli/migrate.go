package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// MigrateResult is the JSON payload of `migrate`.
type MigrateResult struct {
	Applied int `json:"applied"`
}

// MigrationRow is one entry of `migrate status`.
type MigrationRow struct {
	Version int64  `json:"version"`
	Source  string `json:"source"`
	Applied bool   `json:"applied"`
}

// NewMigrateCommand creates the migrate command and its status subcommand.
func NewMigrateCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(rootOpts, open, cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateStatus(rootOpts, open, cmd)
		},
	})

	return cmd
}

func runMigrate(opts *RootOptions, open Opener, cmd *cobra.Command) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	applied, err := b.Migrator.Migrate(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "migrate", err)
	}

	f := newFormatter(opts, cmd)
	return f.Success(MigrateResult{Applied: applied}, func(w io.Writer) error {
		if applied == 0 {
			_, err := fmt.Fprintln(w, "schema is up to date")
			return err
		}
		_, err := fmt.Fprintf(w, "applied %d migration(s)\n", applied)
		return err
	})
}

func runMigrateStatus(opts *RootOptions, open Opener, cmd *cobra.Command) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	statuses, err := b.Migrator.MigrationStatus(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "migration status", err)
	}

	rows := make([]MigrationRow, len(statuses))
	for i, s := range statuses {
		rows[i] = MigrationRow{Version: s.Version, Source: s.Source, Applied: s.Applied}
	}

	f := newFormatter(opts, cmd)
	return f.Success(rows, func(w io.Writer) error {
		lines := make([]string, len(rows))
		for i, r := range rows {
			state := "pending"
			if r.Applied {
				state = "applied"
			}
			lines[i] = strconv.FormatInt(r.Version, 10) + "\t" + r.Source + "\t" + state
		}
		return table(w, "VERSION\tSOURCE\tSTATE", lines)
	})
}
