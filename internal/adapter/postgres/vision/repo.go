// Package vision implements the Vision repository using PostgreSQL.
// Deleting a vision cascades to its pictures, waxes and worlds through the
// foreign keys; prompt outputs keep their rows with vision_id cleared.
package vision

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

// Repo provides vision persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vision repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, title, text, email, focus, status, priority, tags, source, slug,
    metadata, created_at, updated_at`

const createSQL = `
INSERT INTO visions
    (title, text, email, focus, status, priority, tags, source, slug, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11, $12)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM visions WHERE id = $1`

const lockSQL = `SELECT ` + columns + ` FROM visions WHERE id = $1 FOR NO KEY UPDATE`

// md5(text) lets the lookup use visions_text_email_key.
const findByTextEmailSQL = `
SELECT ` + columns + `
FROM visions
WHERE md5(text) = md5($1) AND text = $1 AND COALESCE(email, '') = COALESCE($2, '')`

const updateSQL = `
UPDATE visions SET
    title = $2, focus = $3, status = $4, priority = $5, tags = $6, slug = $7,
    metadata = $8::jsonb, updated_at = $9
WHERE id = $1
RETURNING ` + columns

const deleteSQL = `DELETE FROM visions WHERE id = $1`

// Create inserts v and returns the stored row.
// Returns domain.ErrAlreadyExists if (text, email) is taken, or
// domain.ErrSlugConflict if the slug is.
func (r *Repo) Create(ctx context.Context, v domain.Vision) (*domain.Vision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		v.Title, v.Text, v.Email, v.Focus, string(v.Status), v.Priority, v.Tags, v.Source, v.Slug,
		postgres.JSONArg(v.Metadata, "{}"),
		domain.FormatTimestamp(v.CreatedAt), domain.FormatTimestamp(v.UpdatedAt),
	)
	created, err := scanVision(row)
	if err != nil {
		return nil, postgres.MapError(err, "vision", 0)
	}
	return created, nil
}

// GetByID returns a vision by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Vision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVision(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "vision", id)
	}
	return v, nil
}

// Lock returns the vision and holds a row lock on it until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) Lock(ctx context.Context, id int64) (*domain.Vision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVision(q.QueryRow(ctx, lockSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "vision", id)
	}
	return v, nil
}

// FindByTextEmail returns the vision with exactly this text and author.
// A nil email matches only visions without one.
func (r *Repo) FindByTextEmail(ctx context.Context, text string, email *string) (*domain.Vision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVision(q.QueryRow(ctx, findByTextEmailSQL, text, email))
	if err != nil {
		return nil, postgres.MapError(err, "vision by text", 0)
	}
	return v, nil
}

// Update writes the mutable fields of v. The caller merges partial params
// and stamps UpdatedAt beforehand.
func (r *Repo) Update(ctx context.Context, v domain.Vision) (*domain.Vision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		v.ID, v.Title, v.Focus, string(v.Status), v.Priority, v.Tags, v.Slug,
		postgres.JSONArg(v.Metadata, "{}"), domain.FormatTimestamp(v.UpdatedAt),
	)
	updated, err := scanVision(row)
	if err != nil {
		return nil, postgres.MapError(err, "vision", v.ID)
	}
	return updated, nil
}

// Delete removes a vision together with everything it owns.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "vision", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vision %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanVision(row pgx.Row) (*domain.Vision, error) {
	var (
		v                    domain.Vision
		status               string
		metadata             []byte
		createdAt, updatedAt string
	)
	err := row.Scan(
		&v.ID, &v.Title, &v.Text, &v.Email, &v.Focus, &status, &v.Priority, &v.Tags, &v.Source, &v.Slug,
		&metadata, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Status = domain.ContentStatus(status)
	v.Metadata = metadata
	if v.Timestamps, err = postgres.ParseStamps(createdAt, updatedAt); err != nil {
		return nil, fmt.Errorf("vision %d: %w", v.ID, err)
	}
	return &v, nil
}
