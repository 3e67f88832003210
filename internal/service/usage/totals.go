package usage

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// The reader only touches the aggregate tables; it never scans usage_events.

// DailyTotals returns per-day sums over all models, newest day first.
func (s *Service) DailyTotals(ctx context.Context, input DailyTotalsInput) ([]domain.DayTotals, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	days, err := s.repo.DailyTotals(ctx, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	return days, nil
}

// DailyModelTotals returns the per-model rows of one day.
func (s *Service) DailyModelTotals(ctx context.Context, day string) ([]domain.DailyModelTotals, error) {
	if err := validateDay(day); err != nil {
		return nil, err
	}

	rows, err := s.repo.DailyModelTotals(ctx, day, "")
	if err != nil {
		return nil, fmt.Errorf("daily model totals: %w", err)
	}
	return rows, nil
}

// ModelTotals returns every model ordered by total_tokens descending.
func (s *Service) ModelTotals(ctx context.Context) ([]domain.ModelTotals, error) {
	models, err := s.repo.ModelTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("model totals: %w", err)
	}
	return models, nil
}

// ModelTotal returns the cumulative row of one model.
func (s *Service) ModelTotal(ctx context.Context, model string) (domain.ModelTotals, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return domain.ModelTotals{}, domain.NewValidationError("model", "required")
	}
	total, err := s.repo.ModelTotal(ctx, model)
	if err != nil {
		return domain.ModelTotals{}, fmt.Errorf("model total: %w", err)
	}
	return total, nil
}

// AllTimeTotals returns the singleton cumulative row.
func (s *Service) AllTimeTotals(ctx context.Context) (domain.AllTimeTotals, error) {
	totals, err := s.repo.AllTime(ctx)
	if err != nil {
		return domain.AllTimeTotals{}, fmt.Errorf("all-time totals: %w", err)
	}
	return totals, nil
}

// TodayModelTokens returns today's total_tokens for model, 0 if it has not
// been used today. "Today" is the UTC day of the injected clock.
func (s *Service) TodayModelTokens(ctx context.Context, model string) (int64, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return 0, domain.NewValidationError("model", "required")
	}

	rows, err := s.repo.DailyModelTotals(ctx, domain.DayOf(s.clock.Now()), model)
	if err != nil {
		return 0, fmt.Errorf("today model tokens: %w", err)
	}

	var total int64
	for _, r := range rows {
		total += r.TotalTokens
	}
	return total, nil
}
