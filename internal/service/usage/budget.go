package usage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// CheckDailyBudget returns domain.ErrBudgetExceeded when today's tokens for
// model have reached the configured daily limit. A limit of 0 disables the
// check. Record does not call it; callers guard generation calls with it.
func (s *Service) CheckDailyBudget(ctx context.Context, model string) error {
	if s.cfg.DailyTokenLimit <= 0 {
		return nil
	}

	used, err := s.TodayModelTokens(ctx, model)
	if err != nil {
		return err
	}
	if used < s.cfg.DailyTokenLimit {
		return nil
	}

	s.metrics.RecordBudgetRejection(ctx, model)
	s.log.WarnContext(ctx, "daily token budget exhausted",
		slog.String("model", model),
		slog.Int64("used", used),
		slog.Int64("limit", s.cfg.DailyTokenLimit),
	)

	return fmt.Errorf("model %s used %d of %d tokens today: %w",
		model, used, s.cfg.DailyTokenLimit, domain.ErrBudgetExceeded)
}
