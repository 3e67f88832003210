// Package world implements the World repository using PostgreSQL.
// content_hash is indexed but not unique; writers serialize on the hash with
// a transaction-scoped advisory lock instead.
package world

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/waxworks/internal/adapter/postgres"
	"github.com/heartmarshall/waxworks/internal/domain"
)

// Repo provides world persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new world repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, vision_id, picture_id, wax_id, title, html, content_hash, email, source,
    metadata, created_at, updated_at`

const lockHashSQL = `SELECT pg_advisory_xact_lock(hashtext('worlds:' || $1))`

const insertSQL = `
INSERT INTO worlds
    (vision_id, picture_id, wax_id, title, html, content_hash, email, source, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM worlds WHERE id = $1`

const getByHashSQL = `
SELECT ` + columns + `
FROM worlds
WHERE content_hash = $1
ORDER BY id
LIMIT 1`

const getByPictureEmailSQL = `
SELECT ` + columns + `
FROM worlds
WHERE picture_id = $1 AND COALESCE(email, '') = COALESCE($2, '')`

const updateSQL = `
UPDATE worlds SET
    wax_id = $2, title = $3, html = $4, content_hash = $5, metadata = $6::jsonb, updated_at = $7
WHERE id = $1
RETURNING ` + columns

const deleteSQL = `DELETE FROM worlds WHERE id = $1`

// LockHash takes an advisory lock on hash that is released when the
// surrounding transaction ends. Must be called inside RunInTx.
func (r *Repo) LockHash(ctx context.Context, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, lockHashSQL, hash); err != nil {
		return postgres.MapError(err, "lock world hash", 0)
	}
	return nil
}

// Insert stores w and returns the stored row.
func (r *Repo) Insert(ctx context.Context, w domain.World) (*domain.World, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertSQL,
		w.VisionID, w.PictureID, w.WaxID, w.Title, w.HTML, w.ContentHash, w.Email, w.Source,
		postgres.JSONArg(w.Metadata, "{}"),
		domain.FormatTimestamp(w.CreatedAt), domain.FormatTimestamp(w.UpdatedAt),
	)
	created, err := scanWorld(row)
	if err != nil {
		return nil, postgres.MapError(err, "world", 0)
	}
	return created, nil
}

// GetByID returns a world by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.World, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWorld(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "world", id)
	}
	return w, nil
}

// GetByHash returns the oldest world with the given content hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.World, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWorld(q.QueryRow(ctx, getByHashSQL, hash))
	if err != nil {
		return nil, postgres.MapError(err, "world by hash", 0)
	}
	return w, nil
}

// GetByPictureEmail returns the world holding the (picture, email) slot.
func (r *Repo) GetByPictureEmail(ctx context.Context, pictureID int64, email *string) (*domain.World, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWorld(q.QueryRow(ctx, getByPictureEmailSQL, pictureID, email))
	if err != nil {
		return nil, postgres.MapError(err, "world by picture", pictureID)
	}
	return w, nil
}

// Update overwrites the rendered content of w in place.
func (r *Repo) Update(ctx context.Context, w domain.World) (*domain.World, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		w.ID, w.WaxID, w.Title, w.HTML, w.ContentHash,
		postgres.JSONArg(w.Metadata, "{}"), domain.FormatTimestamp(w.UpdatedAt),
	)
	updated, err := scanWorld(row)
	if err != nil {
		return nil, postgres.MapError(err, "world", w.ID)
	}
	return updated, nil
}

// Delete removes a world.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "world", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("world %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanWorld(row pgx.Row) (*domain.World, error) {
	var (
		w                    domain.World
		metadata             []byte
		createdAt, updatedAt string
	)
	err := row.Scan(
		&w.ID, &w.VisionID, &w.PictureID, &w.WaxID, &w.Title, &w.HTML, &w.ContentHash, &w.Email, &w.Source,
		&metadata, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.Metadata = metadata
	if w.Timestamps, err = postgres.ParseStamps(createdAt, updatedAt); err != nil {
		return nil, fmt.Errorf("world %d: %w", w.ID, err)
	}
	return &w, nil
}
