package domain

import (
	"encoding/json"
	"time"
)

// Vision is the root content artifact. It owns its pictures, waxes and worlds.
type Vision struct {
	ID       int64
	Title    *string
	Text     string
	Email    *string
	Focus    *string
	Status   ContentStatus
	Priority int
	Tags     *string
	Source   *string
	Slug     *string
	Metadata json.RawMessage
	Timestamps
}

// Picture is owned by one vision.
type Picture struct {
	ID          int64
	VisionID    int64
	Subtext     *string
	Title       *string
	Description *string
	Function    *string
	Explanation *string
	Email       *string
	OrderIndex  int
	Status      ContentStatus
	Source      *string
	Slug        *string
	Metadata    json.RawMessage
	Assets      json.RawMessage
	Timestamps
}

// Wax is a text block owned by a vision. PictureID is an association and is
// cleared when the picture is deleted.
type Wax struct {
	ID          int64
	VisionID    int64
	PictureID   *int64
	Title       *string
	Content     string
	ContentHash string
	Email       *string
	Source      *string
	Status      ContentStatus
	Metadata    json.RawMessage
	Timestamps
}

// World is a rendered document owned by a vision. PictureID and WaxID are
// associations.
type World struct {
	ID          int64
	VisionID    int64
	PictureID   *int64
	WaxID       *int64
	Title       *string
	HTML        string
	ContentHash *string
	Email       *string
	Source      *string
	Metadata    json.RawMessage
	Timestamps
}

// PromptOutput is the provenance record of one generation call. Both parent
// links are associations.
type PromptOutput struct {
	ID         int64
	VisionID   *int64
	PictureID  *int64
	Collection string
	PromptKey  string
	PromptText string
	SystemText *string
	OutputText string
	Model      *string
	Email      *string
	Metadata   json.RawMessage
	CreatedAt  time.Time
}

// CoreIdea is a distilled one-line summary tied to a source passage.
type CoreIdea struct {
	ID       int64
	Source   string
	CoreIdea string
	Email    *string
	Origin   CoreIdeaOrigin
	Metadata json.RawMessage
	Timestamps
}

// VisionUpdateParams holds the mutable vision fields. Nil means unchanged.
type VisionUpdateParams struct {
	Title    *string
	Focus    *string
	Tags     *string
	Status   *ContentStatus
	Priority *int
	Slug     *string
	Metadata json.RawMessage
}

// PictureUpdateParams holds the mutable picture fields. Nil means unchanged.
type PictureUpdateParams struct {
	Title       *string
	Description *string
	Explanation *string
	Status      *ContentStatus
	OrderIndex  *int
	Slug        *string
	Metadata    json.RawMessage
	Assets      json.RawMessage
}

// CoreIdeaUpdateParams holds the mutable core idea fields. Nil means unchanged.
type CoreIdeaUpdateParams struct {
	Source   *string
	CoreIdea *string
	Metadata json.RawMessage
}

// PromptOutputFilter narrows ListPromptOutputs. Zero fields are ignored.
type PromptOutputFilter struct {
	VisionID   *int64
	PictureID  *int64
	Collection *string
	Limit      int
}

// CoreIdeaFilter narrows ListCoreIdeas. SourceLike is a substring match.
type CoreIdeaFilter struct {
	SourceLike *string
	Email      *string
	Limit      int
}

// CollectionCount is the number of prompt outputs of one collection.
type CollectionCount struct {
	Collection string
	Count      int
}
