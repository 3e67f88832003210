package usage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// Reconcile compares totals_daily for day with a fresh sum of the event log
// and returns every model whose counters disagree, sorted by model. An empty
// result means the aggregates are exact.
//
// This is an audit operation; the reader never uses the event log.
func (s *Service) Reconcile(ctx context.Context, day string) ([]domain.ReconcileMismatch, error) {
	if err := validateDay(day); err != nil {
		return nil, err
	}

	rows, err := s.repo.CompareDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", day, err)
	}

	mismatches := []domain.ReconcileMismatch{}
	for _, r := range rows {
		if r.Aggregate != r.Events {
			mismatches = append(mismatches, r)
		}
	}

	level := slog.LevelInfo
	if len(mismatches) > 0 {
		level = slog.LevelWarn
	}
	s.log.Log(ctx, level, "usage reconciled",
		slog.String("day", day),
		slog.Int("models", len(rows)),
		slog.Int("mismatches", len(mismatches)),
	)

	return mismatches, nil
}
