package lifecycle

import (
	"encoding/json"
	"strings"

	"github.com/gosimple/slug"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	DefaultListLimit = 50
	MaxListLimit     = 500

	maxTextBytes  = 1 << 20
	maxTitleLen   = 500
	maxShortLen   = 2000
	maxSlugLen    = 200
	maxEmailLen   = 320
	maxSourceLen  = 200
	maxKeyLen     = 200
	maxOrderIndex = 1 << 20
)

// ---------------------------------------------------------------------------
// Vision inputs
// ---------------------------------------------------------------------------

// CreateVisionInput holds the parameters for creating a vision.
type CreateVisionInput struct {
	Text     string
	Title    *string
	Email    *string // nil = caller email from ctx, if any
	Focus    *string
	Tags     *string
	Status   domain.ContentStatus // zero = draft
	Priority int
	Source   *string
	Slug     *string
	Metadata json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateVisionInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(text) > maxTextBytes {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max 1 MiB)"})
	}

	errs = appendMaxLen(errs, "title", i.Title, maxTitleLen)
	errs = appendMaxLen(errs, "focus", i.Focus, maxShortLen)
	errs = appendMaxLen(errs, "tags", i.Tags, maxShortLen)
	errs = appendMaxLen(errs, "email", i.Email, maxEmailLen)
	errs = appendMaxLen(errs, "source", i.Source, maxSourceLen)
	errs = appendStatus(errs, i.Status)
	errs = appendSlug(errs, i.Slug)
	errs = appendMetadata(errs, "metadata", i.Metadata)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateVisionInput holds a partial vision update. Nil fields are left
// unchanged; an empty Slug clears the slug.
type UpdateVisionInput struct {
	ID int64
	domain.VisionUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateVisionInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = appendMaxLen(errs, "title", i.Title, maxTitleLen)
	errs = appendMaxLen(errs, "focus", i.Focus, maxShortLen)
	errs = appendMaxLen(errs, "tags", i.Tags, maxShortLen)
	if i.Status != nil {
		errs = appendStatus(errs, *i.Status)
		if *i.Status == "" {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must not be empty"})
		}
	}
	errs = appendSlug(errs, i.Slug)
	errs = appendMetadata(errs, "metadata", i.Metadata)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Picture inputs
// ---------------------------------------------------------------------------

// CreatePictureInput holds the parameters for creating a picture.
type CreatePictureInput struct {
	VisionID    int64
	Subtext     *string
	Title       *string
	Description *string
	Function    *string
	Explanation *string
	Email       *string // nil = caller email from ctx, if any
	OrderIndex  int
	Status      domain.ContentStatus // zero = draft
	Source      *string
	Slug        *string
	Metadata    json.RawMessage
	Assets      json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreatePictureInput) Validate() error {
	var errs []domain.FieldError

	if i.VisionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "vision_id", Message: "required"})
	}
	errs = appendMaxLen(errs, "subtext", i.Subtext, maxShortLen)
	errs = appendMaxLen(errs, "title", i.Title, maxTitleLen)
	errs = appendMaxLen(errs, "description", i.Description, maxTextBytes)
	errs = appendMaxLen(errs, "function", i.Function, maxShortLen)
	errs = appendMaxLen(errs, "explanation", i.Explanation, maxTextBytes)
	errs = appendMaxLen(errs, "email", i.Email, maxEmailLen)
	errs = appendMaxLen(errs, "source", i.Source, maxSourceLen)
	errs = appendOrderIndex(errs, i.OrderIndex)
	errs = appendStatus(errs, i.Status)
	errs = appendSlug(errs, i.Slug)
	errs = appendMetadata(errs, "metadata", i.Metadata)
	errs = appendAssets(errs, i.Assets)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePictureInput holds a partial picture update. Nil fields are left
// unchanged; an empty Slug clears the slug.
type UpdatePictureInput struct {
	ID int64
	domain.PictureUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdatePictureInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = appendMaxLen(errs, "title", i.Title, maxTitleLen)
	errs = appendMaxLen(errs, "description", i.Description, maxTextBytes)
	errs = appendMaxLen(errs, "explanation", i.Explanation, maxTextBytes)
	if i.Status != nil {
		errs = appendStatus(errs, *i.Status)
		if *i.Status == "" {
			errs = append(errs, domain.FieldError{Field: "status", Message: "must not be empty"})
		}
	}
	if i.OrderIndex != nil {
		errs = appendOrderIndex(errs, *i.OrderIndex)
	}
	errs = appendSlug(errs, i.Slug)
	errs = appendMetadata(errs, "metadata", i.Metadata)
	errs = appendAssets(errs, i.Assets)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Prompt output inputs
// ---------------------------------------------------------------------------

// RecordPromptOutputInput describes one generation call.
type RecordPromptOutputInput struct {
	VisionID   *int64
	PictureID  *int64
	Collection string
	PromptKey  string
	PromptText string
	SystemText *string
	OutputText string
	Model      *string
	Email      *string // nil = caller email from ctx, if any
	Metadata   json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i RecordPromptOutputInput) Validate() error {
	var errs []domain.FieldError

	if i.VisionID != nil && *i.VisionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "vision_id", Message: "must be positive"})
	}
	if i.PictureID != nil && *i.PictureID <= 0 {
		errs = append(errs, domain.FieldError{Field: "picture_id", Message: "must be positive"})
	}
	errs = appendRequired(errs, "collection", i.Collection, maxKeyLen)
	errs = appendRequired(errs, "prompt_key", i.PromptKey, maxKeyLen)
	errs = appendRequired(errs, "prompt_text", i.PromptText, maxTextBytes)
	if len(i.OutputText) > maxTextBytes {
		errs = append(errs, domain.FieldError{Field: "output_text", Message: "too long (max 1 MiB)"})
	}
	errs = appendMaxLen(errs, "system_text", i.SystemText, maxTextBytes)
	errs = appendMaxLen(errs, "model", i.Model, maxKeyLen)
	errs = appendMaxLen(errs, "email", i.Email, maxEmailLen)
	errs = appendMetadata(errs, "metadata", i.Metadata)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPromptOutputsInput filters ListPromptOutputs. Limit 0 means the
// configured default; larger limits are capped.
type ListPromptOutputsInput struct {
	VisionID   *int64
	PictureID  *int64
	Collection *string
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i ListPromptOutputsInput) Validate() error {
	if i.Limit < 0 {
		return domain.NewValidationError("limit", "must be non-negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Core idea inputs
// ---------------------------------------------------------------------------

// CreateCoreIdeaInput holds the parameters for storing a core idea.
type CreateCoreIdeaInput struct {
	Source   string
	CoreIdea string
	Email    *string               // nil = caller email from ctx, if any
	Origin   domain.CoreIdeaOrigin // zero = manual
	Metadata json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateCoreIdeaInput) Validate() error {
	var errs []domain.FieldError

	errs = appendRequired(errs, "source", i.Source, maxTextBytes)
	errs = appendRequired(errs, "core_idea", i.CoreIdea, maxShortLen)
	errs = appendMaxLen(errs, "email", i.Email, maxEmailLen)
	if i.Origin != "" && !i.Origin.IsValid() {
		errs = append(errs, domain.FieldError{Field: "origin", Message: "invalid value"})
	}
	errs = appendMetadata(errs, "metadata", i.Metadata)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCoreIdeaInput holds a partial core idea update.
type UpdateCoreIdeaInput struct {
	ID int64
	domain.CoreIdeaUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateCoreIdeaInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Source != nil {
		errs = appendRequired(errs, "source", *i.Source, maxTextBytes)
	}
	if i.CoreIdea != nil {
		errs = appendRequired(errs, "core_idea", *i.CoreIdea, maxShortLen)
	}
	errs = appendMetadata(errs, "metadata", i.Metadata)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCoreIdeasInput filters ListCoreIdeas.
type ListCoreIdeasInput struct {
	SourceLike *string
	Email      *string
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i ListCoreIdeasInput) Validate() error {
	if i.Limit < 0 {
		return domain.NewValidationError("limit", "must be non-negative")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Field helpers
// ---------------------------------------------------------------------------

func appendRequired(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(trimmed) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendMaxLen(errs []domain.FieldError, field string, value *string, maxLen int) []domain.FieldError {
	if value != nil && len(strings.TrimSpace(*value)) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendStatus(errs []domain.FieldError, status domain.ContentStatus) []domain.FieldError {
	if status != "" && !status.IsValid() {
		return append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	return errs
}

// appendSlug accepts nil and "" (no slug); anything else must already be a
// canonical slug. Slugs are never rewritten on the caller's behalf.
func appendSlug(errs []domain.FieldError, s *string) []domain.FieldError {
	if s == nil || *s == "" {
		return errs
	}
	if len(*s) > maxSlugLen {
		return append(errs, domain.FieldError{Field: "slug", Message: "too long (max 200)"})
	}
	if !slug.IsSlug(*s) {
		return append(errs, domain.FieldError{Field: "slug", Message: "must be lowercase words joined by hyphens"})
	}
	return errs
}

func appendMetadata(errs []domain.FieldError, field string, raw json.RawMessage) []domain.FieldError {
	if len(raw) == 0 {
		return errs
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return append(errs, domain.FieldError{Field: field, Message: "must be a JSON object"})
	}
	return errs
}

func appendAssets(errs []domain.FieldError, raw json.RawMessage) []domain.FieldError {
	if len(raw) == 0 {
		return errs
	}
	var arr []any
	if err := json.Unmarshal(raw, &arr); err != nil {
		return append(errs, domain.FieldError{Field: "assets", Message: "must be a JSON array"})
	}
	return errs
}

func appendOrderIndex(errs []domain.FieldError, idx int) []domain.FieldError {
	if idx < 0 || idx > maxOrderIndex {
		return append(errs, domain.FieldError{Field: "order_index", Message: "out of range"})
	}
	return errs
}
