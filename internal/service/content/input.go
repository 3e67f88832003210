package content

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/waxworks/internal/domain"
)

const (
	maxContentBytes = 1 << 20
	maxTitleLen     = 500
	maxEmailLen     = 320
	maxSourceLen    = 200
)

// ---------------------------------------------------------------------------
// UpsertWaxInput
// ---------------------------------------------------------------------------

// UpsertWaxInput describes a wax to store. The content hash is derived from
// Content; callers never supply it.
type UpsertWaxInput struct {
	VisionID   int64
	PictureID  *int64
	Title      *string
	Content    string
	Email      *string // nil = caller email from ctx, if any
	Source     *string
	Status     domain.ContentStatus // zero = draft
	Metadata   json.RawMessage
	OnConflict domain.ConflictPolicy // zero = ConflictFail
}

// Validate checks all fields and collects all errors.
func (i UpsertWaxInput) Validate() error {
	var errs []domain.FieldError

	if i.VisionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "vision_id", Message: "required"})
	}
	if i.PictureID != nil && *i.PictureID <= 0 {
		errs = append(errs, domain.FieldError{Field: "picture_id", Message: "must be positive"})
	}

	errs = append(errs, validateBody("content", i.Content)...)
	errs = append(errs, validateCommon(i.Title, i.Email, i.Source, i.Metadata)...)

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if !i.OnConflict.OrDefault().IsValid() {
		errs = append(errs, domain.FieldError{Field: "on_conflict", Message: "must be FAIL, REPLACE or APPEND"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// UpsertWorldInput
// ---------------------------------------------------------------------------

// UpsertWorldInput describes a rendered world to store.
type UpsertWorldInput struct {
	VisionID   int64
	PictureID  *int64
	WaxID      *int64
	Title      *string
	HTML       string
	Email      *string // nil = caller email from ctx, if any
	Source     *string
	Metadata   json.RawMessage
	OnConflict domain.ConflictPolicy // zero = ConflictFail; APPEND is not supported
}

// Validate checks all fields and collects all errors.
func (i UpsertWorldInput) Validate() error {
	var errs []domain.FieldError

	if i.VisionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "vision_id", Message: "required"})
	}
	if i.PictureID != nil && *i.PictureID <= 0 {
		errs = append(errs, domain.FieldError{Field: "picture_id", Message: "must be positive"})
	}
	if i.WaxID != nil && *i.WaxID <= 0 {
		errs = append(errs, domain.FieldError{Field: "wax_id", Message: "must be positive"})
	}

	errs = append(errs, validateBody("html", i.HTML)...)
	errs = append(errs, validateCommon(i.Title, i.Email, i.Source, i.Metadata)...)

	switch i.OnConflict.OrDefault() {
	case domain.ConflictFail, domain.ConflictReplace:
	default:
		errs = append(errs, domain.FieldError{Field: "on_conflict", Message: "must be FAIL or REPLACE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Shared field checks
// ---------------------------------------------------------------------------

func validateBody(field, body string) []domain.FieldError {
	var errs []domain.FieldError
	if strings.TrimSpace(body) == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(body) > maxContentBytes {
		errs = append(errs, domain.FieldError{Field: field, Message: "too long (max 1 MiB)"})
	}
	return errs
}

func validateCommon(title, email, source *string, metadata json.RawMessage) []domain.FieldError {
	var errs []domain.FieldError
	if title != nil && len(*title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 500)"})
	}
	if email != nil && len(*email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long (max 320)"})
	}
	if source != nil && len(*source) > maxSourceLen {
		errs = append(errs, domain.FieldError{Field: "source", Message: "too long (max 200)"})
	}
	if len(metadata) > 0 && !json.Valid(metadata) {
		errs = append(errs, domain.FieldError{Field: "metadata", Message: "must be valid JSON"})
	}
	return errs
}
