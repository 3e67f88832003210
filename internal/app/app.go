package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/adapter/postgres/coreidea"
	"github.com/heartmarshall/waxworks/internal/adapter/postgres/picture"
	"github.com/heartmarshall/waxworks/internal/adapter/postgres/promptoutput"
	usagerepo "github.com/heartmarshall/waxworks/internal/adapter/postgres/usage"
	"github.com/heartmarshall/waxworks/internal/adapter/postgres/vision"
	"github.com/heartmarshall/waxworks/internal/adapter/postgres/wax"
	"github.com/heartmarshall/waxworks/internal/adapter/postgres/world"
	"github.com/heartmarshall/waxworks/internal/clock"
	"github.com/heartmarshall/waxworks/internal/config"
	"github.com/heartmarshall/waxworks/internal/observability/metrics"
	"github.com/heartmarshall/waxworks/internal/service/content"
	"github.com/heartmarshall/waxworks/internal/service/lifecycle"
	"github.com/heartmarshall/waxworks/internal/service/usage"
)

// App holds the wired store and services. Callers use the services
// in-process and must Close the App when done.
type App struct {
	Log       *slog.Logger
	Pool      *pgxpool.Pool
	Metrics   *metrics.Metrics
	Usage     *usage.Service
	Content   *content.Service
	Lifecycle *lifecycle.Service

	shutdownMetrics metrics.ShutdownFunc
}

// New connects to PostgreSQL and wires the repositories and services.
// Migrations are not applied; see Migrate.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	provider, shutdown, err := metrics.NewProvider(ctx, cfg.Metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	m, err := metrics.New(cfg.Metrics, provider)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("init instruments: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	txm := postgres.NewTxManager(pool, cfg.Tx, logger).WithObserver(m)
	clk := clock.Real{}

	visions := vision.New(pool)
	pictures := picture.New(pool)
	waxes := wax.New(pool)
	worlds := world.New(pool)

	a := &App{
		Log:     logger,
		Pool:    pool,
		Metrics: m,
		Usage:   usage.NewService(logger, usagerepo.New(pool), txm, clk, m, cfg.Usage),
		Content: content.NewService(logger, visions, pictures, waxes, worlds, txm, clk, m),
		Lifecycle: lifecycle.NewService(logger, visions, pictures, waxes, worlds,
			promptoutput.New(pool), coreidea.New(pool), txm, clk, cfg.Content),
		shutdownMetrics: shutdown,
	}

	logger.InfoContext(ctx, "waxworks initialized",
		slog.String("version", BuildVersion()),
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	return a, nil
}

// Migrate applies pending schema migrations.
func (a *App) Migrate(ctx context.Context) (int, error) {
	return postgres.Migrate(ctx, a.Pool, a.Log)
}

// MigrationStatus lists known migrations and whether each is applied.
func (a *App) MigrationStatus(ctx context.Context) ([]postgres.MigrationStatus, error) {
	return postgres.MigrationsStatus(ctx, a.Pool)
}

// Close flushes metrics and closes the pool.
func (a *App) Close(ctx context.Context) error {
	var err error
	if a.shutdownMetrics != nil {
		err = a.shutdownMetrics(ctx)
	}
	a.Pool.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown metrics: %w", err)
	}
	return nil
}
