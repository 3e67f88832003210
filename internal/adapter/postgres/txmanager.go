package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/waxworks/internal/config"
	"github.com/heartmarshall/waxworks/internal/domain"
)

const rollbackTimeout = 2 * time.Second

// ConflictObserver is notified every time a transaction is retried after
// contention. It is optional.
type ConflictObserver interface {
	RecordTxConflict(ctx context.Context, attempt int)
}

// TxManager manages database transactions using the context pattern.
//
// Every transaction runs under cfg.Timeout and with SET LOCAL lock_timeout.
// Serialization failures, deadlocks and lock timeouts surface as
// domain.ErrConflict; RunInTx retries those with exponential backoff up to
// cfg.MaxRetries times before returning the error to the caller.
//
// A RunInTx call whose ctx already carries a transaction joins it instead of
// opening a second one; the outermost call owns commit and retry.
type TxManager struct {
	pool     *pgxpool.Pool
	cfg      config.TxConfig
	log      *slog.Logger
	observer ConflictObserver
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, cfg config.TxConfig, log *slog.Logger) *TxManager {
	return &TxManager{
		pool: pool,
		cfg:  cfg,
		log:  log.With("component", "txmanager"),
	}
}

// WithObserver attaches a conflict observer and returns m.
func (m *TxManager) WithObserver(o ConflictObserver) *TxManager {
	m.observer = o
	return m
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default); aggregates stay
// consistent because every write is an atomic row-level upsert.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	backoff := retry.NewExponential(m.cfg.RetryBaseDelay)
	backoff = retry.WithJitterPercent(25, backoff)
	backoff = retry.WithMaxRetries(m.cfg.MaxRetries, backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}

		m.log.WarnContext(ctx, "transaction conflict",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if m.observer != nil {
			m.observer.RecordTxConflict(ctx, attempt)
		}
		return retry.RetryableError(err)
	})
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return MapError(err, "begin transaction", 0)
	}

	// Rollback must still reach the server after ctx has expired.
	rollback := func() error {
		rbCtx, rbCancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
		defer rbCancel()
		return tx.Rollback(rbCtx)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	lockTimeout := fmt.Sprintf("%dms", m.cfg.LockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, lockTimeout); err != nil {
		_ = rollback()
		return MapError(err, "set lock_timeout", 0)
	}

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(err, "commit transaction", 0)
	}

	return nil
}
