package lifecycle

import (
	"strings"

	"github.com/gosimple/slug"
)

// SuggestSlug derives a slug from title for callers that want one. It does
// not check availability; a taken slug still fails on write.
func SuggestSlug(title string) string {
	s := slug.Make(strings.TrimSpace(title))
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}
