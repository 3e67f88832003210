package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns an author address no other test uses.
func UniqueEmail() string {
	return "author-" + UniqueSuffix() + "@example.com"
}

func nowStamp() string {
	return domain.FormatTimestamp(time.Now())
}

// SeedVision inserts a draft vision with unique text and author.
func SeedVision(t *testing.T, pool *pgxpool.Pool) domain.Vision {
	t.Helper()

	email := UniqueEmail()
	v := domain.Vision{
		Text:   "vision text " + UniqueSuffix(),
		Email:  &email,
		Status: domain.ContentStatusDraft,
	}

	ts := nowStamp()
	err := pool.QueryRow(context.Background(),
		`INSERT INTO visions (text, email, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		v.Text, v.Email, string(v.Status), ts,
	).Scan(&v.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedVision insert: %v", err)
	}
	return v
}

// SeedPicture inserts a picture under visionID.
func SeedPicture(t *testing.T, pool *pgxpool.Pool, visionID int64) domain.Picture {
	t.Helper()

	title := "picture " + UniqueSuffix()
	p := domain.Picture{
		VisionID: visionID,
		Title:    &title,
		Status:   domain.ContentStatusDraft,
	}

	ts := nowStamp()
	err := pool.QueryRow(context.Background(),
		`INSERT INTO pictures (vision_id, title, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4) RETURNING id`,
		p.VisionID, p.Title, string(p.Status), ts,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPicture insert: %v", err)
	}
	return p
}

// SeedWax inserts a wax with unique content under visionID, optionally
// attached to pictureID.
func SeedWax(t *testing.T, pool *pgxpool.Pool, visionID int64, pictureID *int64) domain.Wax {
	t.Helper()

	w := domain.Wax{
		VisionID:  visionID,
		PictureID: pictureID,
		Content:   "wax content " + UniqueSuffix(),
		Status:    domain.ContentStatusDraft,
	}
	w.ContentHash = domain.ContentHash(domain.HashKindWax, w.Content)

	ts := nowStamp()
	err := pool.QueryRow(context.Background(),
		`INSERT INTO waxes (vision_id, picture_id, content, content_hash, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
		w.VisionID, w.PictureID, w.Content, w.ContentHash, string(w.Status), ts,
	).Scan(&w.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedWax insert: %v", err)
	}
	return w
}

// SeedWorld inserts a world under visionID with optional picture and wax links.
func SeedWorld(t *testing.T, pool *pgxpool.Pool, visionID int64, pictureID, waxID *int64) domain.World {
	t.Helper()

	w := domain.World{
		VisionID:  visionID,
		PictureID: pictureID,
		WaxID:     waxID,
		HTML:      "<p>world " + UniqueSuffix() + "</p>",
	}
	hash := domain.ContentHash(domain.HashKindWorld, w.HTML)
	w.ContentHash = &hash

	ts := nowStamp()
	err := pool.QueryRow(context.Background(),
		`INSERT INTO worlds (vision_id, picture_id, wax_id, html, content_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
		w.VisionID, w.PictureID, w.WaxID, w.HTML, w.ContentHash, ts,
	).Scan(&w.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedWorld insert: %v", err)
	}
	return w
}

// SeedPromptOutput appends a prompt output in collection with optional parents.
func SeedPromptOutput(t *testing.T, pool *pgxpool.Pool, visionID, pictureID *int64, collection string) domain.PromptOutput {
	t.Helper()

	p := domain.PromptOutput{
		VisionID:   visionID,
		PictureID:  pictureID,
		Collection: collection,
		PromptKey:  "key-" + UniqueSuffix(),
		PromptText: "prompt",
		OutputText: "output",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO prompt_outputs (vision_id, picture_id, collection, prompt_key, prompt_text, output_text, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.VisionID, p.PictureID, p.Collection, p.PromptKey, p.PromptText, p.OutputText, nowStamp(),
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedPromptOutput insert: %v", err)
	}
	return p
}

// RowExists reports whether table has a row with the given id.
// table must be a trusted identifier.
func RowExists(t *testing.T, pool *pgxpool.Pool, table string, id int64) bool {
	t.Helper()

	var exists bool
	err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: RowExists %s: %v", table, err)
	}
	return exists
}
