// Package coreidea implements the CoreIdea repository using PostgreSQL.
package coreidea

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides core idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new core idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, source, core_idea, email, origin, metadata, created_at, updated_at`

const createSQL = `
INSERT INTO core_ideas (source, core_idea, email, origin, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM core_ideas WHERE id = $1`

const updateSQL = `
UPDATE core_ideas SET source = $2, core_idea = $3, metadata = $4::jsonb, updated_at = $5
WHERE id = $1
RETURNING ` + columns

// Create inserts c. Returns domain.ErrAlreadyExists if the same
// (source, core idea, email) triple is already stored.
func (r *Repo) Create(ctx context.Context, c domain.CoreIdea) (*domain.CoreIdea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		c.Source, c.CoreIdea, c.Email, string(c.Origin), postgres.JSONArg(c.Metadata, "{}"),
		domain.FormatTimestamp(c.CreatedAt), domain.FormatTimestamp(c.UpdatedAt),
	)
	created, err := scanCoreIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "core_idea", 0)
	}
	return created, nil
}

// GetByID returns a core idea by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.CoreIdea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCoreIdea(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "core_idea", id)
	}
	return c, nil
}

// Update writes source, core idea and metadata of c.
func (r *Repo) Update(ctx context.Context, c domain.CoreIdea) (*domain.CoreIdea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		c.ID, c.Source, c.CoreIdea, postgres.JSONArg(c.Metadata, "{}"), domain.FormatTimestamp(c.UpdatedAt),
	)
	updated, err := scanCoreIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "core_idea", c.ID)
	}
	return updated, nil
}

// List returns core ideas matching filter, newest first. SourceLike is a
// case-insensitive substring match; LIKE wildcards in it are literal.
func (r *Repo) List(ctx context.Context, filter domain.CoreIdeaFilter) ([]*domain.CoreIdea, error) {
	builder := psql.Select(strings.Split(columns, ", ")...).
		From("core_ideas").
		OrderBy("created_at DESC", "id DESC")

	if filter.SourceLike != nil && *filter.SourceLike != "" {
		builder = builder.Where(sq.ILike{"source": "%" + escapeLike(*filter.SourceLike) + "%"})
	}
	if filter.Email != nil {
		builder = builder.Where(sq.Eq{"email": *filter.Email})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build core idea query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list core ideas: %w", err)
	}
	defer rows.Close()

	var result []*domain.CoreIdea
	for rows.Next() {
		c, err := scanCoreIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan core idea: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list core ideas: %w", err)
	}
	return postgres.RowsOrEmpty(result), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanCoreIdea(row pgx.Row) (*domain.CoreIdea, error) {
	var (
		c                    domain.CoreIdea
		origin               string
		metadata             []byte
		createdAt, updatedAt string
	)
	err := row.Scan(&c.ID, &c.Source, &c.CoreIdea, &c.Email, &origin, &metadata, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	c.Origin = domain.CoreIdeaOrigin(origin)
	c.Metadata = metadata
	if c.Timestamps, err = postgres.ParseStamps(createdAt, updatedAt); err != nil {
		return nil, fmt.Errorf("core_idea %d: %w", c.ID, err)
	}
	return &c, nil
}
