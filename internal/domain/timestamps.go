package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the on-disk form of every timestamp column. It is
// fixed-width, so lexical order of stored values equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05Z"

// DayLayout is the on-disk form of totals_daily.day.
const DayLayout = "2006-01-02"

// FormatTimestamp renders t in UTC with second precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored timestamp. RFC 3339 input with an offset or
// fractional seconds is accepted and normalized to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC().Truncate(time.Second), nil
}

// DayOf returns the UTC calendar day of t.
func DayOf(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// Timestamps is embedded by every entity with created_at/updated_at.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StampCreate sets both timestamps to now. Called once, on insert.
func (ts *Timestamps) StampCreate(now time.Time) {
	now = now.UTC().Truncate(time.Second)
	ts.CreatedAt = now
	ts.UpdatedAt = now
}

// StampUpdate bumps UpdatedAt and leaves CreatedAt untouched. UpdatedAt
// never moves backwards, even if the clock does.
func (ts *Timestamps) StampUpdate(now time.Time) {
	now = now.UTC().Truncate(time.Second)
	if now.Before(ts.UpdatedAt) {
		return
	}
	ts.UpdatedAt = now
}
