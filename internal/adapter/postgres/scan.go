package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// JSONArg renders raw as a text argument for a $n::jsonb placeholder.
// An empty raw yields def.
func JSONArg(raw json.RawMessage, def string) string {
	if len(raw) == 0 {
		return def
	}
	return string(raw)
}

// ParseStamps converts the created_at/updated_at text columns.
func ParseStamps(createdAt, updatedAt string) (domain.Timestamps, error) {
	c, err := domain.ParseTimestamp(createdAt)
	if err != nil {
		return domain.Timestamps{}, fmt.Errorf("created_at: %w", err)
	}
	u, err := domain.ParseTimestamp(updatedAt)
	if err != nil {
		return domain.Timestamps{}, fmt.Errorf("updated_at: %w", err)
	}
	return domain.Timestamps{CreatedAt: c, UpdatedAt: u}, nil
}

// RowsOrEmpty guarantees a non-nil slice.
func RowsOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
