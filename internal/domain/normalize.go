package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeContent prepares artifact text for fingerprinting:
//   - Unicode NFC
//   - CRLF and lone CR become LF
//   - trailing whitespace on every line is dropped
//   - leading/trailing blank space of the whole text is trimmed
//
// Two texts that differ only in these respects hash identically.
func NormalizeContent(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// NormalizeEmail trims and lowercases an author email. Empty input yields nil.
func NormalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}

// TrimOrNil trims whitespace and returns nil for an empty result.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
