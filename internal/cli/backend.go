package cli

import (
	"context"

	"github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/internal/service/usage"
)

// LedgerReader is the read side of the usage ledger the CLI reports on.
type LedgerReader interface {
	DailyTotals(ctx context.Context, input usage.DailyTotalsInput) ([]domain.DayTotals, error)
	DailyModelTotals(ctx context.Context, day string) ([]domain.DailyModelTotals, error)
	ModelTotals(ctx context.Context) ([]domain.ModelTotals, error)
	AllTimeTotals(ctx context.Context) (domain.AllTimeTotals, error)
	TodayModelTokens(ctx context.Context, model string) (int64, error)
	CheckDailyBudget(ctx context.Context, model string) error
	Reconcile(ctx context.Context, day string) ([]domain.ReconcileMismatch, error)
}

// Migrator applies and inspects schema migrations.
type Migrator interface {
	Migrate(ctx context.Context) (int, error)
	MigrationStatus(ctx context.Context) ([]postgres.MigrationStatus, error)
}

// Backend is what a command needs from an opened store.
type Backend struct {
	Ledger   LedgerReader
	Migrator Migrator
	Close    func()
}

// Opener connects to the store described by opts. It is called once per
// command invocation, after flags are parsed.
type Opener func(ctx context.Context, opts *RootOptions) (*Backend, error)

func openBackend(cmdCtx context.Context, open Opener, opts *RootOptions) (*Backend, error) {
	b, err := open(cmdCtx, opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open store", err)
	}
	if b.Close == nil {
		b.Close = func() {}
	}
	return b, nil
}
