package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/waxworks/internal/clock"
	"github.com/heartmarshall/waxworks/internal/domain"
)

// VerifyResult is the JSON payload of `verify`.
type VerifyResult struct {
	Day        string        `json:"day"`
	OK         bool          `json:"ok"`
	Mismatches []MismatchRow `json:"mismatches"`
}

// MismatchRow is one model whose daily aggregate disagrees with its events.
type MismatchRow struct {
	Model     string   `json:"model"`
	Aggregate Counters `json:"aggregate"`
	Events    Counters `json:"events"`
}

// NewVerifyCommand creates the verify command. It exits with ExitFailure
// when any model's daily row disagrees with the event log.
func NewVerifyCommand(rootOpts *RootOptions, open Opener, clk clock.Clock) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Compare a day's aggregates with the event log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if day == "" {
				day = domain.DayOf(clk.Now())
			}
			return runVerify(rootOpts, open, cmd, day)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default today, UTC)")

	return cmd
}

func runVerify(opts *RootOptions, open Opener, cmd *cobra.Command, day string) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	f := newFormatter(opts, cmd)
	f.VerboseLog("verifying %s", day)

	mismatches, err := b.Ledger.Reconcile(cmd.Context(), day)
	if err != nil {
		return serviceError("verify", err)
	}

	result := VerifyResult{Day: day, OK: len(mismatches) == 0, Mismatches: make([]MismatchRow, len(mismatches))}
	for i, m := range mismatches {
		result.Mismatches[i] = MismatchRow{
			Model:     m.Model,
			Aggregate: countersOf(m.Aggregate),
			Events:    countersOf(m.Events),
		}
	}

	err = f.Success(result, func(w io.Writer) error {
		if result.OK {
			_, err := fmt.Fprintf(w, "%s: aggregates match the event log\n", day)
			return err
		}
		lines := make([]string, len(result.Mismatches))
		for i, m := range result.Mismatches {
			lines[i] = fmt.Sprintf("%s\t%d\t%d\t%d\t%d",
				m.Model, m.Aggregate.TotalTokens, m.Events.TotalTokens, m.Aggregate.Calls, m.Events.Calls)
		}
		return table(w, "MODEL\tAGG_TOTAL\tEVENT_TOTAL\tAGG_CALLS\tEVENT_CALLS", lines)
	})
	if err != nil {
		return err
	}

	if !result.OK {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d model(s) disagree with the event log", day, len(mismatches)))
	}
	return nil
}
