package usage

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/clock"
	"github.com/heartmarshall/waxworks/internal/config"
	"github.com/heartmarshall/waxworks/internal/domain"
)

type usageRepo interface {
	InsertEvent(ctx context.Context, e domain.UsageEvent) (*domain.UsageEvent, error)
	FoldIntoAggregates(ctx context.Context, e domain.UsageEvent) error

	AllTime(ctx context.Context) (domain.AllTimeTotals, error)
	ModelTotals(ctx context.Context) ([]domain.ModelTotals, error)
	ModelTotal(ctx context.Context, model string) (domain.ModelTotals, error)
	DailyTotals(ctx context.Context, limit int) ([]domain.DayTotals, error)
	DailyModelTotals(ctx context.Context, day, model string) ([]domain.DailyModelTotals, error)

	CompareDay(ctx context.Context, day string) ([]domain.ReconcileMismatch, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type usageMetrics interface {
	RecordUsageEvent(ctx context.Context, model string, tokensIn, tokensOut int64)
	RecordBudgetRejection(ctx context.Context, model string)
}

// Service records usage events and reads the aggregates they maintain.
type Service struct {
	repo    usageRepo
	tx      txManager
	clock   clock.Clock
	metrics usageMetrics
	cfg     config.UsageConfig
	log     *slog.Logger
}

// NewService creates a new usage service.
func NewService(
	log *slog.Logger,
	repo usageRepo,
	tx txManager,
	clk clock.Clock,
	metrics usageMetrics,
	cfg config.UsageConfig,
) *Service {
	return &Service{
		repo:    repo,
		tx:      tx,
		clock:   clk,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "usage"),
	}
}
