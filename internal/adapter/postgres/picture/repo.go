// Package picture implements the Picture repository using PostgreSQL.
package picture

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

// Repo provides picture persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new picture repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, vision_id, subtext, title, description, function, explanation, email,
    order_index, status, source, slug, metadata, assets, created_at, updated_at`

const createSQL = `
INSERT INTO pictures
    (vision_id, subtext, title, description, function, explanation, email,
     order_index, status, source, slug, metadata, assets, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12::jsonb, $13::jsonb, $14, $15)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM pictures WHERE id = $1`

// FOR NO KEY UPDATE still lets foreign key checks of concurrent inserts
// through; it only serializes writers keyed on the same picture.
const lockSQL = `SELECT ` + columns + ` FROM pictures WHERE id = $1 FOR NO KEY UPDATE`

const findBySignatureSQL = `
SELECT ` + columns + `
FROM pictures
WHERE vision_id = $1
  AND title IS NOT DISTINCT FROM $2
  AND description IS NOT DISTINCT FROM $3
  AND COALESCE(email, '') = COALESCE($4, '')
ORDER BY id
LIMIT 1`

const listByVisionSQL = `
SELECT ` + columns + `
FROM pictures
WHERE vision_id = $1
ORDER BY order_index, id`

const updateSQL = `
UPDATE pictures SET
    title = $2, description = $3, explanation = $4, status = $5, order_index = $6,
    slug = $7, metadata = $8::jsonb, assets = $9::jsonb, updated_at = $10
WHERE id = $1
RETURNING ` + columns

const deleteSQL = `DELETE FROM pictures WHERE id = $1`

// Create inserts p. Returns domain.ErrNotFound if the vision does not exist
// and domain.ErrSlugConflict if the slug is taken.
func (r *Repo) Create(ctx context.Context, p domain.Picture) (*domain.Picture, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		p.VisionID, p.Subtext, p.Title, p.Description, p.Function, p.Explanation, p.Email,
		p.OrderIndex, string(p.Status), p.Source, p.Slug,
		postgres.JSONArg(p.Metadata, "{}"), postgres.JSONArg(p.Assets, "[]"),
		domain.FormatTimestamp(p.CreatedAt), domain.FormatTimestamp(p.UpdatedAt),
	)
	created, err := scanPicture(row)
	if err != nil {
		return nil, postgres.MapError(err, "picture", 0)
	}
	return created, nil
}

// GetByID returns a picture by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Picture, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPicture(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "picture", id)
	}
	return p, nil
}

// Lock returns the picture and holds a row lock on it until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) Lock(ctx context.Context, id int64) (*domain.Picture, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPicture(q.QueryRow(ctx, lockSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "picture", id)
	}
	return p, nil
}

// FindBySignature returns the oldest picture of visionID with the same
// title, description and author.
func (r *Repo) FindBySignature(ctx context.Context, visionID int64, title, description, email *string) (*domain.Picture, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPicture(q.QueryRow(ctx, findBySignatureSQL, visionID, title, description, email))
	if err != nil {
		return nil, postgres.MapError(err, "picture by signature", 0)
	}
	return p, nil
}

// ListByVision returns the pictures of a vision ordered by order_index, id.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByVision(ctx context.Context, visionID int64) ([]*domain.Picture, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByVisionSQL, visionID)
	if err != nil {
		return nil, fmt.Errorf("list pictures of vision %d: %w", visionID, err)
	}
	defer rows.Close()

	var result []*domain.Picture
	for rows.Next() {
		p, err := scanPicture(rows)
		if err != nil {
			return nil, fmt.Errorf("scan picture: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pictures of vision %d: %w", visionID, err)
	}
	return postgres.RowsOrEmpty(result), nil
}

// Update writes the mutable fields of p.
func (r *Repo) Update(ctx context.Context, p domain.Picture) (*domain.Picture, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		p.ID, p.Title, p.Description, p.Explanation, string(p.Status), p.OrderIndex, p.Slug,
		postgres.JSONArg(p.Metadata, "{}"), postgres.JSONArg(p.Assets, "[]"),
		domain.FormatTimestamp(p.UpdatedAt),
	)
	updated, err := scanPicture(row)
	if err != nil {
		return nil, postgres.MapError(err, "picture", p.ID)
	}
	return updated, nil
}

// Delete removes a picture. Waxes, worlds and prompt outputs that point at
// it keep their rows with picture_id cleared.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "picture", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("picture %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanPicture(row pgx.Row) (*domain.Picture, error) {
	var (
		p                    domain.Picture
		status               string
		metadata, assets     []byte
		createdAt, updatedAt string
	)
	err := row.Scan(
		&p.ID, &p.VisionID, &p.Subtext, &p.Title, &p.Description, &p.Function, &p.Explanation, &p.Email,
		&p.OrderIndex, &status, &p.Source, &p.Slug, &metadata, &assets, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.ContentStatus(status)
	p.Metadata = metadata
	p.Assets = assets
	if p.Timestamps, err = postgres.ParseStamps(createdAt, updatedAt); err != nil {
		return nil, fmt.Errorf("picture %d: %w", p.ID, err)
	}
	return &p, nil
}
