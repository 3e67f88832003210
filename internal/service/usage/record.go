package usage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/pkg/ctxutil"
)

// Record appends one usage event and folds it into the daily, per-model and
// all-time aggregates in a single transaction. Either the event and all
// three aggregate updates commit, or nothing does.
//
// Lock contention is retried by the transaction manager; once the retry
// budget is spent the error wraps domain.ErrConflict.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.UsageEvent, error) {
	if strings.TrimSpace(input.App) == "" {
		input.App = s.cfg.DefaultApp
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event := s.buildEvent(ctx, input)

	var stored *domain.UsageEvent
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		stored, err = s.repo.InsertEvent(txCtx, event)
		if err != nil {
			return fmt.Errorf("insert usage event: %w", err)
		}
		if err := s.repo.FoldIntoAggregates(txCtx, *stored); err != nil {
			return fmt.Errorf("fold usage event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordUsageEvent(ctx, stored.Model, stored.TokensIn, stored.TokensOut)

	s.log.InfoContext(ctx, "usage recorded",
		slog.Int64("event_id", stored.ID),
		slog.String("model", stored.Model),
		slog.String("day", stored.Day()),
		slog.Int64("total_tokens", stored.TotalTokens),
	)

	return stored, nil
}

func (s *Service) buildEvent(ctx context.Context, input RecordInput) domain.UsageEvent {
	ts := s.clock.Now()
	if input.TS != nil {
		ts = *input.TS
	}

	email := domain.NormalizeEmail(input.Email)
	if email == nil {
		if fromCtx, ok := ctxutil.EmailFromCtx(ctx); ok {
			email = &fromCtx
		}
	}

	requestID := domain.TrimOrNil(input.RequestID)
	if requestID == nil {
		if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
			requestID = &id
		}
	}

	return domain.UsageEvent{
		TS:          ts.UTC().Truncate(time.Second),
		App:         strings.TrimSpace(input.App),
		Model:       strings.TrimSpace(input.Model),
		Endpoint:    domain.TrimOrNil(input.Endpoint),
		Email:       email,
		RequestID:   requestID,
		TokensIn:    input.TokensIn,
		TokensOut:   input.TokensOut,
		TotalTokens: input.TokensIn + input.TokensOut,
		DurationMS:  input.DurationMS,
		CostUSD:     input.CostUSD,
		Meta:        input.Meta,
	}
}
