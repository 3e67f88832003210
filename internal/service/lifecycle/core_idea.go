package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// CreateCoreIdea stores a core idea. The same (source, core idea, email)
// triple fails with domain.ErrAlreadyExists.
func (s *Service) CreateCoreIdea(ctx context.Context, input CreateCoreIdeaInput) (*domain.CoreIdea, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	origin := input.Origin
	if origin == "" {
		origin = domain.CoreIdeaOriginManual
	}

	c := domain.CoreIdea{
		Source:   strings.TrimSpace(input.Source),
		CoreIdea: strings.TrimSpace(input.CoreIdea),
		Email:    authorEmail(ctx, input.Email),
		Origin:   origin,
		Metadata: input.Metadata,
	}
	c.StampCreate(s.clock.Now())

	var created *domain.CoreIdea
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.coreIdeas.Create(txCtx, c)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create core idea: %w", err)
	}

	s.log.InfoContext(ctx, "core idea created",
		slog.Int64("core_idea_id", created.ID),
		slog.String("origin", created.Origin.String()),
	)

	return created, nil
}

// UpdateCoreIdea applies a partial update and bumps updated_at.
func (s *Service) UpdateCoreIdea(ctx context.Context, input UpdateCoreIdeaInput) (*domain.CoreIdea, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.CoreIdea
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.coreIdeas.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}

		if input.Source != nil {
			c.Source = strings.TrimSpace(*input.Source)
		}
		if input.CoreIdea != nil {
			c.CoreIdea = strings.TrimSpace(*input.CoreIdea)
		}
		if len(input.Metadata) > 0 {
			c.Metadata = input.Metadata
		}
		c.StampUpdate(s.clock.Now())

		updated, err = s.coreIdeas.Update(txCtx, *c)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update core idea: %w", err)
	}

	s.log.InfoContext(ctx, "core idea updated",
		slog.Int64("core_idea_id", updated.ID),
	)

	return updated, nil
}

// ListCoreIdeas returns core ideas, newest first, filtered by a source
// substring and an exact author email.
func (s *Service) ListCoreIdeas(ctx context.Context, input ListCoreIdeasInput) ([]*domain.CoreIdea, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ideas, err := s.coreIdeas.List(ctx, domain.CoreIdeaFilter{
		SourceLike: domain.TrimOrNil(input.SourceLike),
		Email:      domain.NormalizeEmail(input.Email),
		Limit:      s.clampLimit(input.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list core ideas: %w", err)
	}
	return ideas, nil
}
