package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// BudgetResult is the JSON payload of `budget`.
type BudgetResult struct {
	Model     string `json:"model"`
	UsedToday int64  `json:"used_today"`
	Exhausted bool   `json:"exhausted"`
}

// NewBudgetCommand creates the budget command. It exits with ExitFailure
// when the model has used up today's token budget.
func NewBudgetCommand(rootOpts *RootOptions, open Opener) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show a model's tokens today and whether its daily budget is exhausted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudget(rootOpts, open, cmd, model)
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "model name")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runBudget(opts *RootOptions, open Opener, cmd *cobra.Command, model string) error {
	b, err := openBackend(cmd.Context(), open, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	used, err := b.Ledger.TodayModelTokens(cmd.Context(), model)
	if err != nil {
		return serviceError("today's tokens", err)
	}

	result := BudgetResult{Model: model, UsedToday: used}
	if err := b.Ledger.CheckDailyBudget(cmd.Context(), model); err != nil {
		if !errors.Is(err, domain.ErrBudgetExceeded) {
			return serviceError("budget check", err)
		}
		result.Exhausted = true
	}

	f := newFormatter(opts, cmd)
	err = f.Success(result, func(w io.Writer) error {
		state := "within budget"
		if result.Exhausted {
			state = "budget exhausted"
		}
		_, err := fmt.Fprintf(w, "%s: %d tokens today, %s\n", model, used, state)
		return err
	})
	if err != nil {
		return err
	}

	if result.Exhausted {
		return NewExitError(ExitFailure, fmt.Sprintf("model %s: daily budget exhausted", model))
	}
	return nil
}
