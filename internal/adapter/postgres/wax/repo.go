// Package wax implements the Wax repository using PostgreSQL.
// content_hash is globally unique; (picture_id, email) is unique among
// waxes that still have a picture.
package wax

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

// Repo provides wax persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wax repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, vision_id, picture_id, title, content, content_hash, email, source, status,
    metadata, created_at, updated_at`

const insertIfAbsentSQL = `
INSERT INTO waxes
    (vision_id, picture_id, title, content, content_hash, email, source, status, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)
ON CONFLICT (content_hash) DO NOTHING
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM waxes WHERE id = $1`

const getByHashSQL = `SELECT ` + columns + ` FROM waxes WHERE content_hash = $1`

const getByPictureEmailSQL = `
SELECT ` + columns + `
FROM waxes
WHERE picture_id = $1 AND COALESCE(email, '') = COALESCE($2, '')`

const updateContentSQL = `
UPDATE waxes SET
    title = $2, content = $3, content_hash = $4, metadata = $5::jsonb, updated_at = $6
WHERE id = $1
RETURNING ` + columns

const deleteSQL = `DELETE FROM waxes WHERE id = $1`

// InsertIfAbsent inserts w unless a wax with the same content hash already
// exists, in which case the existing row is returned with inserted=false.
// A concurrent insert of the same hash resolves to the winner's row.
func (r *Repo) InsertIfAbsent(ctx context.Context, w domain.Wax) (*domain.Wax, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertIfAbsentSQL,
		w.VisionID, w.PictureID, w.Title, w.Content, w.ContentHash, w.Email, w.Source, string(w.Status),
		postgres.JSONArg(w.Metadata, "{}"),
		domain.FormatTimestamp(w.CreatedAt), domain.FormatTimestamp(w.UpdatedAt),
	)
	created, err := scanWax(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "wax", 0)
	}

	existing, err := r.GetByHash(ctx, w.ContentHash)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByID returns a wax by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Wax, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWax(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "wax", id)
	}
	return w, nil
}

// GetByHash returns the wax with the given content hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.Wax, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWax(q.QueryRow(ctx, getByHashSQL, hash))
	if err != nil {
		return nil, postgres.MapError(err, "wax by hash", 0)
	}
	return w, nil
}

// GetByPictureEmail returns the wax holding the (picture, email) slot.
func (r *Repo) GetByPictureEmail(ctx context.Context, pictureID int64, email *string) (*domain.Wax, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWax(q.QueryRow(ctx, getByPictureEmailSQL, pictureID, email))
	if err != nil {
		return nil, postgres.MapError(err, "wax by picture", pictureID)
	}
	return w, nil
}

// UpdateContent rewrites title, content, hash and metadata of w in place.
// Returns domain.ErrAlreadyExists if the new hash belongs to another wax.
func (r *Repo) UpdateContent(ctx context.Context, w domain.Wax) (*domain.Wax, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateContentSQL,
		w.ID, w.Title, w.Content, w.ContentHash,
		postgres.JSONArg(w.Metadata, "{}"), domain.FormatTimestamp(w.UpdatedAt),
	)
	updated, err := scanWax(row)
	if err != nil {
		return nil, postgres.MapError(err, "wax", w.ID)
	}
	return updated, nil
}

// Delete removes a wax. Worlds rendered from it keep their rows with
// wax_id cleared.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "wax", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wax %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanWax(row pgx.Row) (*domain.Wax, error) {
	var (
		w                    domain.Wax
		status               string
		metadata             []byte
		createdAt, updatedAt string
	)
	err := row.Scan(
		&w.ID, &w.VisionID, &w.PictureID, &w.Title, &w.Content, &w.ContentHash, &w.Email, &w.Source,
		&status, &metadata, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Status = domain.ContentStatus(status)
	w.Metadata = metadata
	if w.Timestamps, err = postgres.ParseStamps(createdAt, updatedAt); err != nil {
		return nil, fmt.Errorf("wax %d: %w", w.ID, err)
	}
	return &w, nil
}
