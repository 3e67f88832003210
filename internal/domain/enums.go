package domain

// ContentStatus is the editorial state of a vision, picture or wax.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusActive    ContentStatus = "active"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

func (s ContentStatus) String() string { return string(s) }

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusActive, ContentStatusPublished, ContentStatusArchived:
		return true
	}
	return false
}

// ConflictPolicy selects what an upsert does when the (picture, email) slot
// is already held by a row with different content.
type ConflictPolicy string

const (
	// ConflictFail rejects the write with ErrAlreadyExists.
	ConflictFail ConflictPolicy = "FAIL"
	// ConflictReplace overwrites the existing row in place.
	ConflictReplace ConflictPolicy = "REPLACE"
	// ConflictAppend concatenates the new content onto the existing row.
	ConflictAppend ConflictPolicy = "APPEND"
)

func (p ConflictPolicy) String() string { return string(p) }

func (p ConflictPolicy) IsValid() bool {
	switch p {
	case ConflictFail, ConflictReplace, ConflictAppend:
		return true
	}
	return false
}

// OrDefault returns ConflictFail for the zero value.
func (p ConflictPolicy) OrDefault() ConflictPolicy {
	if p == "" {
		return ConflictFail
	}
	return p
}

// CoreIdeaOrigin records how a core idea entered the store.
type CoreIdeaOrigin string

const (
	CoreIdeaOriginManual    CoreIdeaOrigin = "manual"
	CoreIdeaOriginExtracted CoreIdeaOrigin = "extracted"
	CoreIdeaOriginImported  CoreIdeaOrigin = "imported"
)

func (o CoreIdeaOrigin) String() string { return string(o) }

func (o CoreIdeaOrigin) IsValid() bool {
	switch o {
	case CoreIdeaOriginManual, CoreIdeaOriginExtracted, CoreIdeaOriginImported:
		return true
	}
	return false
}
