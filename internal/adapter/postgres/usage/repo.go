// Package usage implements the usage ledger repository: the append-only
// usage_events table and the three aggregate tables folded from it.
package usage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides usage ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write path
// ---------------------------------------------------------------------------

const insertEventSQL = `
INSERT INTO usage_events
    (ts, app, model, endpoint, email, request_id,
     tokens_in, tokens_out, total_tokens, duration_ms, cost_usd, meta)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::numeric, $12::jsonb)
RETURNING id`

// Upserts are queued in this order: daily, model, all-time. Every writer
// takes the row locks in the same order, and the singleton is held last so
// its lock is as short as possible.
const upsertDailySQL = `
INSERT INTO totals_daily (day, model, tokens_in, tokens_out, total_tokens, calls)
VALUES ($1, $2, $3, $4, $5, 1)
ON CONFLICT (day, model) DO UPDATE SET
    tokens_in    = totals_daily.tokens_in    + EXCLUDED.tokens_in,
    tokens_out   = totals_daily.tokens_out   + EXCLUDED.tokens_out,
    total_tokens = totals_daily.total_tokens + EXCLUDED.total_tokens,
    calls        = totals_daily.calls        + 1`

const upsertModelSQL = `
INSERT INTO totals_by_model (model, tokens_in, tokens_out, total_tokens, calls, first_ts, last_ts)
VALUES ($1, $2, $3, $4, 1, $5, $5)
ON CONFLICT (model) DO UPDATE SET
    tokens_in    = totals_by_model.tokens_in    + EXCLUDED.tokens_in,
    tokens_out   = totals_by_model.tokens_out   + EXCLUDED.tokens_out,
    total_tokens = totals_by_model.total_tokens + EXCLUDED.total_tokens,
    calls        = totals_by_model.calls        + 1,
    first_ts     = LEAST(totals_by_model.first_ts, EXCLUDED.first_ts),
    last_ts      = GREATEST(totals_by_model.last_ts, EXCLUDED.last_ts)`

const upsertAllTimeSQL = `
INSERT INTO totals_all_time (id, tokens_in, tokens_out, total_tokens, calls, last_ts)
VALUES (1, $1, $2, $3, 1, $4)
ON CONFLICT (id) DO UPDATE SET
    tokens_in    = totals_all_time.tokens_in    + EXCLUDED.tokens_in,
    tokens_out   = totals_all_time.tokens_out   + EXCLUDED.tokens_out,
    total_tokens = totals_all_time.total_tokens + EXCLUDED.total_tokens,
    calls        = totals_all_time.calls        + 1,
    last_ts      = GREATEST(totals_all_time.last_ts, EXCLUDED.last_ts)`

// InsertEvent appends e to usage_events and returns it with its ID set.
// e.TotalTokens must already equal TokensIn + TokensOut; the table CHECK
// rejects anything else.
func (r *Repo) InsertEvent(ctx context.Context, e domain.UsageEvent) (*domain.UsageEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	meta := "{}"
	if len(e.Meta) > 0 {
		meta = string(e.Meta)
	}

	err := q.QueryRow(ctx, insertEventSQL,
		domain.FormatTimestamp(e.TS), e.App, e.Model, e.Endpoint, e.Email, e.RequestID,
		e.TokensIn, e.TokensOut, e.TotalTokens, e.DurationMS, e.CostUSD.String(), meta,
	).Scan(&e.ID)
	if err != nil {
		return nil, postgres.MapError(err, "usage_event", 0)
	}

	e.Meta = json.RawMessage(meta)
	return &e, nil
}

// FoldIntoAggregates adds e to totals_daily, totals_by_model and
// totals_all_time with atomic row-level increments, in one round trip.
// It must run in the same transaction as InsertEvent.
func (r *Repo) FoldIntoAggregates(ctx context.Context, e domain.UsageEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ts := domain.FormatTimestamp(e.TS)

	b := &pgx.Batch{}
	b.Queue(upsertDailySQL, e.Day(), e.Model, e.TokensIn, e.TokensOut, e.TotalTokens)
	b.Queue(upsertModelSQL, e.Model, e.TokensIn, e.TokensOut, e.TotalTokens, ts)
	b.Queue(upsertAllTimeSQL, e.TokensIn, e.TokensOut, e.TotalTokens, ts)

	br := q.SendBatch(ctx, b)
	steps := [...]string{"totals_daily", "totals_by_model", "totals_all_time"}
	for _, step := range steps {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, step, e.ID)
		}
	}
	if err := br.Close(); err != nil {
		return postgres.MapError(err, "fold aggregates", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read path (aggregate tables only)
// ---------------------------------------------------------------------------

const allTimeSQL = `
SELECT tokens_in, tokens_out, total_tokens, calls, last_ts
FROM totals_all_time WHERE id = 1`

// AllTime returns the singleton cumulative row.
func (r *Repo) AllTime(ctx context.Context) (domain.AllTimeTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		out    domain.AllTimeTotals
		lastTS *string
	)
	err := q.QueryRow(ctx, allTimeSQL).Scan(
		&out.TokensIn, &out.TokensOut, &out.TotalTokens, &out.Calls, &lastTS,
	)
	if err != nil {
		return domain.AllTimeTotals{}, postgres.MapError(err, "totals_all_time", 1)
	}

	if lastTS != nil {
		t, err := domain.ParseTimestamp(*lastTS)
		if err != nil {
			return domain.AllTimeTotals{}, fmt.Errorf("totals_all_time: %w", err)
		}
		out.LastTS = &t
	}
	return out, nil
}

const modelTotalsColumns = `model, tokens_in, tokens_out, total_tokens, calls, first_ts, last_ts`

// ModelTotals returns every model ordered by total_tokens descending, then model name.
func (r *Repo) ModelTotals(ctx context.Context) ([]domain.ModelTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+modelTotalsColumns+`
FROM totals_by_model ORDER BY total_tokens DESC, model ASC`)
	if err != nil {
		return nil, fmt.Errorf("list model totals: %w", err)
	}
	defer rows.Close()

	result := []domain.ModelTotals{}
	for rows.Next() {
		m, err := scanModelTotals(rows)
		if err != nil {
			return nil, fmt.Errorf("scan model totals: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list model totals: %w", err)
	}
	return result, nil
}

// ModelTotal returns the row of one model. domain.ErrNotFound if the model
// has never been recorded.
func (r *Repo) ModelTotal(ctx context.Context, model string) (domain.ModelTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanModelTotals(q.QueryRow(ctx, `SELECT `+modelTotalsColumns+`
FROM totals_by_model WHERE model = $1`, model))
	if err != nil {
		return domain.ModelTotals{}, postgres.MapError(err, "totals_by_model "+model, 0)
	}
	return m, nil
}

// DailyTotals returns one row per day summed over models, newest day first.
// limit <= 0 returns every day.
func (r *Repo) DailyTotals(ctx context.Context, limit int) ([]domain.DayTotals, error) {
	builder := psql.
		Select("day", "SUM(tokens_in)::bigint", "SUM(tokens_out)::bigint", "SUM(total_tokens)::bigint", "SUM(calls)::bigint").
		From("totals_daily").
		GroupBy("day").
		OrderBy("day DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily totals query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily totals: %w", err)
	}
	defer rows.Close()

	result := []domain.DayTotals{}
	for rows.Next() {
		var d domain.DayTotals
		if err := rows.Scan(&d.Day, &d.TokensIn, &d.TokensOut, &d.TotalTokens, &d.Calls); err != nil {
			return nil, fmt.Errorf("scan daily totals: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list daily totals: %w", err)
	}
	return result, nil
}

// DailyModelTotals returns the per-model rows of one day, largest first.
// An empty model filters nothing.
func (r *Repo) DailyModelTotals(ctx context.Context, day, model string) ([]domain.DailyModelTotals, error) {
	builder := psql.
		Select("day", "model", "tokens_in", "tokens_out", "total_tokens", "calls").
		From("totals_daily").
		Where(sq.Eq{"day": day}).
		OrderBy("total_tokens DESC", "model ASC")
	if model != "" {
		builder = builder.Where(sq.Eq{"model": model})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily model totals query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily model totals: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyModelTotals{}
	for rows.Next() {
		var d domain.DailyModelTotals
		if err := rows.Scan(&d.Day, &d.Model, &d.TokensIn, &d.TokensOut, &d.TotalTokens, &d.Calls); err != nil {
			return nil, fmt.Errorf("scan daily model totals: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list daily model totals: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Event log reads (audit only, never used to serve totals)
// ---------------------------------------------------------------------------

const getEventSQL = `
SELECT id, ts, app, model, endpoint, email, request_id,
       tokens_in, tokens_out, total_tokens, duration_ms, cost_usd::text, meta
FROM usage_events WHERE id = $1`

// GetEvent returns one stored event.
func (r *Repo) GetEvent(ctx context.Context, id int64) (*domain.UsageEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		e    domain.UsageEvent
		ts   string
		cost string
		meta []byte
	)
	err := q.QueryRow(ctx, getEventSQL, id).Scan(
		&e.ID, &ts, &e.App, &e.Model, &e.Endpoint, &e.Email, &e.RequestID,
		&e.TokensIn, &e.TokensOut, &e.TotalTokens, &e.DurationMS, &cost, &meta,
	)
	if err != nil {
		return nil, postgres.MapError(err, "usage_event", id)
	}

	if e.TS, err = domain.ParseTimestamp(ts); err != nil {
		return nil, fmt.Errorf("usage_event %d: %w", id, err)
	}
	if e.CostUSD, err = decimal.NewFromString(cost); err != nil {
		return nil, fmt.Errorf("usage_event %d: parse cost: %w", id, err)
	}
	e.Meta = json.RawMessage(meta)
	return &e, nil
}

// One statement, so both sides come from the same snapshot.
const compareDaySQL = `
WITH ev AS (
    SELECT model,
           SUM(tokens_in)::bigint    AS tokens_in,
           SUM(tokens_out)::bigint   AS tokens_out,
           SUM(total_tokens)::bigint AS total_tokens,
           COUNT(*)                  AS calls
    FROM usage_events
    WHERE substr(ts, 1, 10) = $1
    GROUP BY model
), ag AS (
    SELECT model, tokens_in, tokens_out, total_tokens, calls
    FROM totals_daily
    WHERE day = $1
)
SELECT COALESCE(ag.model, ev.model),
       COALESCE(ag.tokens_in, 0), COALESCE(ag.tokens_out, 0),
       COALESCE(ag.total_tokens, 0), COALESCE(ag.calls, 0),
       COALESCE(ev.tokens_in, 0), COALESCE(ev.tokens_out, 0),
       COALESCE(ev.total_tokens, 0), COALESCE(ev.calls, 0)
FROM ag FULL OUTER JOIN ev ON ag.model = ev.model
ORDER BY 1`

// CompareDay returns, per model seen on day in either totals_daily or the
// event log, the aggregate counters next to a fresh sum of the events.
func (r *Repo) CompareDay(ctx context.Context, day string) ([]domain.ReconcileMismatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, compareDaySQL, day)
	if err != nil {
		return nil, fmt.Errorf("compare %s: %w", day, err)
	}
	defer rows.Close()

	result := []domain.ReconcileMismatch{}
	for rows.Next() {
		m := domain.ReconcileMismatch{Day: day}
		err := rows.Scan(&m.Model,
			&m.Aggregate.TokensIn, &m.Aggregate.TokensOut, &m.Aggregate.TotalTokens, &m.Aggregate.Calls,
			&m.Events.TokensIn, &m.Events.TokensOut, &m.Events.TotalTokens, &m.Events.Calls,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("compare %s: %w", day, err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanModelTotals(row pgx.Row) (domain.ModelTotals, error) {
	var (
		m               domain.ModelTotals
		firstTS, lastTS string
	)
	if err := row.Scan(&m.Model, &m.TokensIn, &m.TokensOut, &m.TotalTokens, &m.Calls, &firstTS, &lastTS); err != nil {
		return domain.ModelTotals{}, err
	}

	var err error
	if m.FirstTS, err = domain.ParseTimestamp(firstTS); err != nil {
		return domain.ModelTotals{}, err
	}
	if m.LastTS, err = domain.ParseTimestamp(lastTS); err != nil {
		return domain.ModelTotals{}, err
	}
	return m, nil
}
