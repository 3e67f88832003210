package usage

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/waxworks/internal/domain"
)

const (
	maxNameLen    = 200
	maxDailyLimit = 366
)

// RecordInput describes one model call. TotalTokens is not accepted; it is
// always TokensIn + TokensOut.
type RecordInput struct {
	TS         *time.Time // nil = now; set for backfill
	App        string     // blank = configured default app
	Model      string
	Endpoint   *string
	Email      *string // nil = caller email from ctx, if any
	RequestID  *string // nil = request ID from ctx, if any
	TokensIn   int64
	TokensOut  int64
	DurationMS int64
	CostUSD    decimal.Decimal
	Meta       json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	app := strings.TrimSpace(i.App)
	if app == "" {
		errs = append(errs, domain.FieldError{Field: "app", Message: "required"})
	}
	if len(app) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "app", Message: "max 200 characters"})
	}

	model := strings.TrimSpace(i.Model)
	if model == "" {
		errs = append(errs, domain.FieldError{Field: "model", Message: "required"})
	}
	if len(model) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "model", Message: "max 200 characters"})
	}

	if i.TokensIn < 0 {
		errs = append(errs, domain.FieldError{Field: "tokens_in", Message: "must be >= 0"})
	}
	if i.TokensOut < 0 {
		errs = append(errs, domain.FieldError{Field: "tokens_out", Message: "must be >= 0"})
	}
	if i.TokensIn > 0 && i.TokensOut > 0 && i.TokensIn+i.TokensOut < 0 {
		errs = append(errs, domain.FieldError{Field: "tokens_out", Message: "total overflows"})
	}
	if i.DurationMS < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_ms", Message: "must be >= 0"})
	}
	if i.CostUSD.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "cost_usd", Message: "must be >= 0"})
	}
	if i.TS != nil {
		if y := i.TS.UTC().Year(); y < 0 || y > 9999 {
			errs = append(errs, domain.FieldError{Field: "ts", Message: "year must be within 0000-9999"})
		}
	}
	if len(i.Meta) > 0 && !json.Valid(i.Meta) {
		errs = append(errs, domain.FieldError{Field: "meta", Message: "must be valid JSON"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DailyTotalsInput bounds DailyTotals. Limit 0 returns every day.
type DailyTotalsInput struct {
	Limit int
}

// Validate checks all fields and collects all errors.
func (i DailyTotalsInput) Validate() error {
	if i.Limit < 0 || i.Limit > maxDailyLimit {
		return domain.NewValidationError("limit", "must be between 0 and 366")
	}
	return nil
}

// validateDay checks a YYYY-MM-DD day key.
func validateDay(day string) error {
	if _, err := time.Parse(domain.DayLayout, day); err != nil {
		return domain.NewValidationError("day", "must be YYYY-MM-DD")
	}
	return nil
}
