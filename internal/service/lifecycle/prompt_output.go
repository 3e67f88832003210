package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/waxworks/internal/domain"
)

// RecordPromptOutput appends the provenance record of one generation call.
// Given parents must exist, and a given picture must belong to the given
// vision.
func (s *Service) RecordPromptOutput(ctx context.Context, input RecordPromptOutputInput) (*domain.PromptOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := domain.PromptOutput{
		VisionID:   input.VisionID,
		PictureID:  input.PictureID,
		Collection: strings.TrimSpace(input.Collection),
		PromptKey:  strings.TrimSpace(input.PromptKey),
		PromptText: input.PromptText,
		SystemText: input.SystemText,
		OutputText: input.OutputText,
		Model:      domain.TrimOrNil(input.Model),
		Email:      authorEmail(ctx, input.Email),
		Metadata:   input.Metadata,
		CreatedAt:  s.clock.Now().UTC().Truncate(time.Second),
	}

	var created *domain.PromptOutput
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if p.VisionID != nil {
			if _, err := s.visions.GetByID(txCtx, *p.VisionID); err != nil {
				return err
			}
		}
		if p.PictureID != nil {
			pic, err := s.pictures.GetByID(txCtx, *p.PictureID)
			if err != nil {
				return err
			}
			if p.VisionID != nil && pic.VisionID != *p.VisionID {
				return domain.NewValidationError("picture_id",
					fmt.Sprintf("picture %d belongs to vision %d", pic.ID, pic.VisionID))
			}
		}

		var err error
		created, err = s.promptOutputs.Insert(txCtx, p)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("record prompt output: %w", err)
	}

	s.log.InfoContext(ctx, "prompt output recorded",
		slog.Int64("prompt_output_id", created.ID),
		slog.String("collection", created.Collection),
	)

	return created, nil
}

// ListPromptOutputs returns prompt outputs matching the filters, newest first.
func (s *Service) ListPromptOutputs(ctx context.Context, input ListPromptOutputsInput) ([]*domain.PromptOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	outputs, err := s.promptOutputs.List(ctx, domain.PromptOutputFilter{
		VisionID:   input.VisionID,
		PictureID:  input.PictureID,
		Collection: domain.TrimOrNil(input.Collection),
		Limit:      s.clampLimit(input.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list prompt outputs: %w", err)
	}
	return outputs, nil
}

// CountPromptOutputsByPicture returns the number of prompt outputs of a
// picture per collection.
func (s *Service) CountPromptOutputsByPicture(ctx context.Context, pictureID int64) ([]domain.CollectionCount, error) {
	counts, err := s.promptOutputs.CountByPicture(ctx, pictureID)
	if err != nil {
		return nil, fmt.Errorf("count prompt outputs: %w", err)
	}
	return counts, nil
}
