package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/pkg/ctxutil"
)

// CreateVision stores a new vision. A taken (text, email) pair fails with
// domain.ErrAlreadyExists and a taken slug with domain.ErrSlugConflict.
func (s *Service) CreateVision(ctx context.Context, input CreateVisionInput) (*domain.Vision, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v := s.buildVision(ctx, input)

	var created *domain.Vision
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.visions.Create(txCtx, v)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create vision: %w", err)
	}

	s.log.InfoContext(ctx, "vision created",
		slog.Int64("vision_id", created.ID),
	)

	return created, nil
}

// UpsertVisionByTextEmail returns the vision with the same text and author
// if there is one (wasNew=false), and creates it otherwise.
func (s *Service) UpsertVisionByTextEmail(ctx context.Context, input CreateVisionInput) (*domain.Vision, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	v := s.buildVision(ctx, input)

	var (
		result *domain.Vision
		wasNew bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.visions.FindByTextEmail(txCtx, v.Text, v.Email)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		result, err = s.visions.Create(txCtx, v)
		if err != nil {
			return err
		}
		wasNew = true
		return nil
	})

	// A concurrent writer won the (text, email) slot; its row is the answer.
	if errors.Is(err, domain.ErrAlreadyExists) && !errors.Is(err, domain.ErrSlugConflict) {
		existing, findErr := s.visions.FindByTextEmail(ctx, v.Text, v.Email)
		if findErr == nil {
			return existing, false, nil
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("upsert vision: %w", err)
	}

	if wasNew {
		s.log.InfoContext(ctx, "vision created",
			slog.Int64("vision_id", result.ID),
		)
	}

	return result, wasNew, nil
}

// GetVision returns a vision by ID.
func (s *Service) GetVision(ctx context.Context, id int64) (*domain.Vision, error) {
	v, err := s.visions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vision: %w", err)
	}
	return v, nil
}

// UpdateVision applies a partial update and bumps updated_at.
func (s *Service) UpdateVision(ctx context.Context, input UpdateVisionInput) (*domain.Vision, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Vision
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		v, err := s.visions.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}

		p := input.VisionUpdateParams
		if p.Title != nil {
			v.Title = domain.TrimOrNil(p.Title)
		}
		if p.Focus != nil {
			v.Focus = domain.TrimOrNil(p.Focus)
		}
		if p.Tags != nil {
			v.Tags = domain.TrimOrNil(p.Tags)
		}
		if p.Status != nil {
			v.Status = *p.Status
		}
		if p.Priority != nil {
			v.Priority = *p.Priority
		}
		if p.Slug != nil {
			v.Slug = domain.TrimOrNil(p.Slug)
		}
		if len(p.Metadata) > 0 {
			v.Metadata = p.Metadata
		}
		v.StampUpdate(s.clock.Now())

		updated, err = s.visions.Update(txCtx, *v)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update vision: %w", err)
	}

	s.log.InfoContext(ctx, "vision updated",
		slog.Int64("vision_id", updated.ID),
	)

	return updated, nil
}

// DeleteVision removes a vision with its pictures, waxes and worlds.
// Prompt outputs that referenced any of them are kept with the link cleared.
func (s *Service) DeleteVision(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.visions.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete vision: %w", err)
	}

	s.log.InfoContext(ctx, "vision deleted",
		slog.Int64("vision_id", id),
	)

	return nil
}

func (s *Service) buildVision(ctx context.Context, input CreateVisionInput) domain.Vision {
	status := input.Status
	if status == "" {
		status = domain.ContentStatusDraft
	}

	v := domain.Vision{
		Title:    domain.TrimOrNil(input.Title),
		Text:     strings.TrimSpace(input.Text),
		Email:    authorEmail(ctx, input.Email),
		Focus:    domain.TrimOrNil(input.Focus),
		Status:   status,
		Priority: input.Priority,
		Tags:     domain.TrimOrNil(input.Tags),
		Source:   domain.TrimOrNil(input.Source),
		Slug:     domain.TrimOrNil(input.Slug),
		Metadata: input.Metadata,
	}
	v.StampCreate(s.clock.Now())
	return v
}

// authorEmail normalizes the given email and falls back to the caller's.
func authorEmail(ctx context.Context, email *string) *string {
	if e := domain.NormalizeEmail(email); e != nil {
		return e
	}
	if e, ok := ctxutil.EmailFromCtx(ctx); ok {
		return &e
	}
	return nil
}
