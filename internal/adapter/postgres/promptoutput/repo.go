// Package promptoutput implements the append-only prompt output log.
package promptoutput

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "vision_id", "picture_id", "collection", "prompt_key", "prompt_text", "system_text",
	"output_text", "model", "email", "metadata", "created_at",
}

// Repo provides prompt output persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prompt output repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO prompt_outputs
    (vision_id, picture_id, collection, prompt_key, prompt_text, system_text, output_text,
     model, email, metadata, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11)
RETURNING id, vision_id, picture_id, collection, prompt_key, prompt_text, system_text,
    output_text, model, email, metadata, created_at`

const countByPictureSQL = `
SELECT collection, count(*)
FROM prompt_outputs
WHERE picture_id = $1
GROUP BY collection
ORDER BY collection`

// Insert appends p. Returns domain.ErrNotFound if a given parent does not exist.
func (r *Repo) Insert(ctx context.Context, p domain.PromptOutput) (*domain.PromptOutput, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL,
		p.VisionID, p.PictureID, p.Collection, p.PromptKey, p.PromptText, p.SystemText, p.OutputText,
		p.Model, p.Email, postgres.JSONArg(p.Metadata, "{}"), domain.FormatTimestamp(p.CreatedAt),
	)
	created, err := scanPromptOutput(row)
	if err != nil {
		return nil, postgres.MapError(err, "prompt_output", 0)
	}
	return created, nil
}

// List returns prompt outputs matching filter, newest first.
// filter.Limit must already be clamped by the caller.
func (r *Repo) List(ctx context.Context, filter domain.PromptOutputFilter) ([]*domain.PromptOutput, error) {
	builder := psql.Select(columns...).
		From("prompt_outputs").
		OrderBy("created_at DESC", "id DESC")

	if filter.VisionID != nil {
		builder = builder.Where(sq.Eq{"vision_id": *filter.VisionID})
	}
	if filter.PictureID != nil {
		builder = builder.Where(sq.Eq{"picture_id": *filter.PictureID})
	}
	if filter.Collection != nil {
		builder = builder.Where(sq.Eq{"collection": *filter.Collection})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build prompt output query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prompt outputs: %w", err)
	}
	defer rows.Close()

	var result []*domain.PromptOutput
	for rows.Next() {
		p, err := scanPromptOutput(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prompt output: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prompt outputs: %w", err)
	}
	return postgres.RowsOrEmpty(result), nil
}

// CountByPicture returns per-collection counts for one picture, ordered by
// collection name.
func (r *Repo) CountByPicture(ctx context.Context, pictureID int64) ([]domain.CollectionCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByPictureSQL, pictureID)
	if err != nil {
		return nil, fmt.Errorf("count prompt outputs of picture %d: %w", pictureID, err)
	}
	defer rows.Close()

	var result []domain.CollectionCount
	for rows.Next() {
		var c domain.CollectionCount
		if err := rows.Scan(&c.Collection, &c.Count); err != nil {
			return nil, fmt.Errorf("scan collection count: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count prompt outputs of picture %d: %w", pictureID, err)
	}
	return postgres.RowsOrEmpty(result), nil
}

func scanPromptOutput(row pgx.Row) (*domain.PromptOutput, error) {
	var (
		p         domain.PromptOutput
		metadata  []byte
		createdAt string
	)
	err := row.Scan(
		&p.ID, &p.VisionID, &p.PictureID, &p.Collection, &p.PromptKey, &p.PromptText, &p.SystemText,
		&p.OutputText, &p.Model, &p.Email, &metadata, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.Metadata = metadata
	if p.CreatedAt, err = domain.ParseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("prompt_output %d: %w", p.ID, err)
	}
	return &p, nil
}
