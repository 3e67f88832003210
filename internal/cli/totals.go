package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/internal/service/usage"
)

const defaultDailyLimit = 30

// Counters is the JSON form of domain.TokenCounters.
type Counters struct {
	TokensIn    int64 `json:"tokens_in"`
	TokensOut   int64 `json:"tokens_out"`
	TotalTokens int64 `json:"total_tokens"`
	Calls       int64 `json:"calls"`
}

func countersOf(c domain.TokenCounters) Counters {
	return Counters{TokensIn: c.TokensIn, TokensOut: c.TokensOut, TotalTokens: c.TotalTokens, Calls: c.Calls}
}

func (c Counters) cells() string {
	return fmt.Sprintf("%d\t%d\t%d\t%d", c.TokensIn, c.TokensOut, c.TotalTokens, c.Calls)
}

// DayRow is one day summed over models.
type DayRow struct {
	Day string `json:"day"`
	Counters
}

// DayModelRow is one model on one day.
type DayModelRow struct {
	Day   string `json:"day"`
	Model string `json:"model"`
	Counters
}

// ModelRow is the cumulative row of one model.
type ModelRow struct {
	Model string `json:"model"`
	Counters
	FirstTS string `json:"first_ts"`
	LastTS  string `json:"last_ts"`
}

// AllTimeRow is the ledger-wide total.
type AllTimeRow struct {
	Counters
	LastTS *string `json:"last_ts"`
}

const countersHeader = "TOKENS_IN\tTOKENS_OUT\tTOTAL\tCALLS"

// NewTotalsCommand creates the totals command group.
func NewTotalsCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Report usage aggregates",
	}

	var limit int
	daily := &cobra.Command{
		Use:   "daily",
		Short: "Per-day totals over all models, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTotalsDaily(rootOpts, open, cmd, limit)
		},
	}
	daily.Flags().IntVar(&limit, "limit", defaultDailyLimit, "number of days (0 = all)")

	var day string
	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Per-model totals of one UTC day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTotalsDay(rootOpts, open, cmd, day)
		},
	}
	dayCmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD")
	_ = dayCmd.MarkFlagRequired("day")

	cmd.AddCommand(daily, dayCmd,
		&cobra.Command{
			Use:   "models",
			Short: "Cumulative totals per model, largest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTotalsModels(rootOpts, open, cmd)
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Ledger-wide totals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTotalsAll(rootOpts, open, cmd)
			},
		},
	)

	return cmd
}

func runTotalsDaily(opts *RootOptions, open Opener, cmd *cobra.Command, limit int) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	days, err := b.Ledger.DailyTotals(cmd.Context(), usage.DailyTotalsInput{Limit: limit})
	if err != nil {
		return serviceError("daily totals", err)
	}

	rows := make([]DayRow, len(days))
	for i, d := range days {
		rows[i] = DayRow{Day: d.Day, Counters: countersOf(d.TokenCounters)}
	}

	return newFormatter(opts, cmd).Success(rows, func(w io.Writer) error {
		if len(rows) == 0 {
			_, err := fmt.Fprintln(w, "no usage recorded")
			return err
		}
		lines := make([]string, len(rows))
		for i, r := range rows {
			lines[i] = r.Day + "\t" + r.cells()
		}
		return table(w, "DAY\t"+countersHeader, lines)
	})
}

func runTotalsDay(opts *RootOptions, open Opener, cmd *cobra.Command, day string) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	models, err := b.Ledger.DailyModelTotals(cmd.Context(), day)
	if err != nil {
		return serviceError("day totals", err)
	}

	rows := make([]DayModelRow, len(models))
	for i, m := range models {
		rows[i] = DayModelRow{Day: m.Day, Model: m.Model, Counters: countersOf(m.TokenCounters)}
	}

	return newFormatter(opts, cmd).Success(rows, func(w io.Writer) error {
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, "no usage recorded on %s\n", day)
			return err
		}
		lines := make([]string, len(rows))
		for i, r := range rows {
			lines[i] = r.Model + "\t" + r.cells()
		}
		return table(w, "MODEL\t"+countersHeader, lines)
	})
}

func runTotalsModels(opts *RootOptions, open Opener, cmd *cobra.Command) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	models, err := b.Ledger.ModelTotals(cmd.Context())
	if err != nil {
		return serviceError("model totals", err)
	}

	rows := make([]ModelRow, len(models))
	for i, m := range models {
		rows[i] = ModelRow{
			Model:    m.Model,
			Counters: countersOf(m.TokenCounters),
			FirstTS:  domain.FormatTimestamp(m.FirstTS),
			LastTS:   domain.FormatTimestamp(m.LastTS),
		}
	}

	return newFormatter(opts, cmd).Success(rows, func(w io.Writer) error {
		if len(rows) == 0 {
			_, err := fmt.Fprintln(w, "no usage recorded")
			return err
		}
		lines := make([]string, len(rows))
		for i, r := range rows {
			lines[i] = r.Model + "\t" + r.cells() + "\t" + r.FirstTS + "\t" + r.LastTS
		}
		return table(w, "MODEL\t"+countersHeader+"\tFIRST\tLAST", lines)
	})
}

func runTotalsAll(opts *RootOptions, open Opener, cmd *cobra.Command) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	all, err := b.Ledger.AllTimeTotals(cmd.Context())
	if err != nil {
		return serviceError("all-time totals", err)
	}

	row := AllTimeRow{Counters: countersOf(all.TokenCounters)}
	if all.LastTS != nil {
		ts := domain.FormatTimestamp(*all.LastTS)
		row.LastTS = &ts
	}

	return newFormatter(opts, cmd).Success(row, func(w io.Writer) error {
		last := "-"
		if row.LastTS != nil {
			last = *row.LastTS
		}
		return table(w, "KEY\tVALUE", []string{
			fmt.Sprintf("tokens_in\t%d", row.TokensIn),
			fmt.Sprintf("tokens_out\t%d", row.TokensOut),
			fmt.Sprintf("total_tokens\t%d", row.TotalTokens),
			fmt.Sprintf("calls\t%d", row.Calls),
			"last_ts\t" + last,
		})
	})
}
