package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// CreatePicture stores a new picture under an existing vision.
func (s *Service) CreatePicture(ctx context.Context, input CreatePictureInput) (*domain.Picture, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := s.buildPicture(ctx, input)

	var created *domain.Picture
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.visions.GetByID(txCtx, p.VisionID); err != nil {
			return err
		}
		var err error
		created, err = s.pictures.Create(txCtx, p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create picture: %w", err)
	}

	s.log.InfoContext(ctx, "picture created",
		slog.Int64("picture_id", created.ID),
		slog.Int64("vision_id", created.VisionID),
	)

	return created, nil
}

// FindOrCreatePicture returns the picture of the vision with the same title,
// description and author (wasNew=false), or creates one. Concurrent calls
// for the same vision are serialized.
func (s *Service) FindOrCreatePicture(ctx context.Context, input CreatePictureInput) (*domain.Picture, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	p := s.buildPicture(ctx, input)

	var (
		result *domain.Picture
		wasNew bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// The vision row lock serializes lookups for the same vision.
		if _, err := s.visions.Lock(txCtx, p.VisionID); err != nil {
			return err
		}

		existing, err := s.pictures.FindBySignature(txCtx, p.VisionID, p.Title, p.Description, p.Email)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		result, err = s.pictures.Create(txCtx, p)
		if err != nil {
			return err
		}
		wasNew = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("find or create picture: %w", err)
	}

	if wasNew {
		s.log.InfoContext(ctx, "picture created",
			slog.Int64("picture_id", result.ID),
			slog.Int64("vision_id", result.VisionID),
		)
	}

	return result, wasNew, nil
}

// GetPicture returns a picture by ID.
func (s *Service) GetPicture(ctx context.Context, id int64) (*domain.Picture, error) {
	p, err := s.pictures.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get picture: %w", err)
	}
	return p, nil
}

// ListPicturesByVision returns the pictures of a vision ordered by
// order_index, then id. A vision without pictures, or a deleted one, yields
// an empty slice.
func (s *Service) ListPicturesByVision(ctx context.Context, visionID int64) ([]*domain.Picture, error) {
	pictures, err := s.pictures.ListByVision(ctx, visionID)
	if err != nil {
		return nil, fmt.Errorf("list pictures: %w", err)
	}
	return pictures, nil
}

// UpdatePicture applies a partial update and bumps updated_at.
func (s *Service) UpdatePicture(ctx context.Context, input UpdatePictureInput) (*domain.Picture, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Picture
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.pictures.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}

		params := input.PictureUpdateParams
		if params.Title != nil {
			p.Title = domain.TrimOrNil(params.Title)
		}
		if params.Description != nil {
			p.Description = domain.TrimOrNil(params.Description)
		}
		if params.Explanation != nil {
			p.Explanation = domain.TrimOrNil(params.Explanation)
		}
		if params.Status != nil {
			p.Status = *params.Status
		}
		if params.OrderIndex != nil {
			p.OrderIndex = *params.OrderIndex
		}
		if params.Slug != nil {
			p.Slug = domain.TrimOrNil(params.Slug)
		}
		if len(params.Metadata) > 0 {
			p.Metadata = params.Metadata
		}
		if len(params.Assets) > 0 {
			p.Assets = params.Assets
		}
		p.StampUpdate(s.clock.Now())

		updated, err = s.pictures.Update(txCtx, *p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update picture: %w", err)
	}

	s.log.InfoContext(ctx, "picture updated",
		slog.Int64("picture_id", updated.ID),
	)

	return updated, nil
}

// DeletePicture removes a picture. Waxes, worlds and prompt outputs that
// referenced it are kept with picture_id cleared.
func (s *Service) DeletePicture(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.pictures.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete picture: %w", err)
	}

	s.log.InfoContext(ctx, "picture deleted",
		slog.Int64("picture_id", id),
	)

	return nil
}

func (s *Service) buildPicture(ctx context.Context, input CreatePictureInput) domain.Picture {
	status := input.Status
	if status == "" {
		status = domain.ContentStatusDraft
	}

	p := domain.Picture{
		VisionID:    input.VisionID,
		Subtext:     domain.TrimOrNil(input.Subtext),
		Title:       domain.TrimOrNil(input.Title),
		Description: domain.TrimOrNil(input.Description),
		Function:    domain.TrimOrNil(input.Function),
		Explanation: domain.TrimOrNil(input.Explanation),
		Email:       authorEmail(ctx, input.Email),
		OrderIndex:  input.OrderIndex,
		Status:      status,
		Source:      domain.TrimOrNil(input.Source),
		Slug:        domain.TrimOrNil(input.Slug),
		Metadata:    input.Metadata,
		Assets:      input.Assets,
	}
	p.StampCreate(s.clock.Now())
	return p
}
