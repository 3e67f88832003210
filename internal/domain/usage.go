package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UsageEvent is one billed model call. Rows are append-only.
type UsageEvent struct {
	ID          int64
	TS          time.Time
	App         string
	Model       string
	Endpoint    *string
	Email       *string
	RequestID   *string
	TokensIn    int64
	TokensOut   int64
	TotalTokens int64
	DurationMS  int64
	CostUSD     decimal.Decimal
	Meta        json.RawMessage
}

// Day returns the totals_daily key the event is folded into.
func (e UsageEvent) Day() string {
	return DayOf(e.TS)
}

// TokenCounters are the additive columns shared by every aggregate table.
type TokenCounters struct {
	TokensIn    int64
	TokensOut   int64
	TotalTokens int64
	Calls       int64
}

// Add folds one event into c.
func (c *TokenCounters) Add(e UsageEvent) {
	c.TokensIn += e.TokensIn
	c.TokensOut += e.TokensOut
	c.TotalTokens += e.TotalTokens
	c.Calls++
}

// AllTimeTotals is the singleton cumulative row.
type AllTimeTotals struct {
	TokenCounters
	LastTS *time.Time
}

// ModelTotals is the cumulative row of one model.
type ModelTotals struct {
	Model string
	TokenCounters
	FirstTS time.Time
	LastTS  time.Time
}

// DailyModelTotals is one (day, model) row of totals_daily.
type DailyModelTotals struct {
	Day   string
	Model string
	TokenCounters
}

// DayTotals is one day summed over all models.
type DayTotals struct {
	Day string
	TokenCounters
}

// ReconcileMismatch reports a (day, model) whose aggregate row disagrees with
// the event log.
type ReconcileMismatch struct {
	Day       string
	Model     string
	Aggregate TokenCounters
	Events    TokenCounters
}
