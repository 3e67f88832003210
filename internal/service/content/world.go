package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/internal/observability/metrics"
)

// UpsertWorldByHash stores a rendered world keyed by the hash of its HTML.
//
// World hashes are not unique in the store, so writers of one hash serialize
// on a transaction-scoped advisory lock before looking it up. The oldest
// world with the hash is returned unchanged with wasNew=false. A taken
// (picture, email) slot fails with domain.ErrAlreadyExists unless
// input.OnConflict is ConflictReplace, which overwrites the holder.
func (s *Service) UpsertWorldByHash(ctx context.Context, input UpsertWorldInput) (*domain.World, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	hash := domain.ContentHash(domain.HashKindWorld, input.HTML)
	email := authorEmail(ctx, input.Email)

	var (
		result  *domain.World
		outcome string
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkParents(txCtx, input.VisionID, input.PictureID); err != nil {
			return err
		}
		if input.WaxID != nil {
			wax, err := s.waxes.GetByID(txCtx, *input.WaxID)
			if err != nil {
				return err
			}
			if wax.VisionID != input.VisionID {
				return domain.NewValidationError("wax_id",
					fmt.Sprintf("wax %d belongs to vision %d", wax.ID, wax.VisionID))
			}
		}

		if err := s.worlds.LockHash(txCtx, hash); err != nil {
			return err
		}

		existing, err := s.worlds.GetByHash(txCtx, hash)
		if err == nil {
			result, outcome = existing, metrics.OutcomeExisting
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find world by hash: %w", err)
		}

		if input.PictureID != nil {
			holder, err := s.worlds.GetByPictureEmail(txCtx, *input.PictureID, email)
			switch {
			case err == nil:
				if input.OnConflict.OrDefault() != domain.ConflictReplace {
					return fmt.Errorf("world %d holds picture %d for this author: %w",
						holder.ID, *input.PictureID, domain.ErrAlreadyExists)
				}
				result, err = s.replaceWorld(txCtx, holder, input, hash)
				outcome = metrics.OutcomeReplaced
				return err
			case !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("find world by picture: %w", err)
			}
		}

		w := domain.World{
			VisionID:    input.VisionID,
			PictureID:   input.PictureID,
			WaxID:       input.WaxID,
			Title:       domain.TrimOrNil(input.Title),
			HTML:        input.HTML,
			ContentHash: &hash,
			Email:       email,
			Source:      domain.TrimOrNil(input.Source),
			Metadata:    input.Metadata,
		}
		w.StampCreate(s.clock.Now())

		result, err = s.worlds.Insert(txCtx, w)
		if err != nil {
			return fmt.Errorf("insert world: %w", err)
		}
		outcome = metrics.OutcomeInserted
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.log.WarnContext(ctx, "world slot taken",
				slog.Int64("vision_id", input.VisionID),
				slog.String("error", err.Error()),
			)
		}
		return nil, false, err
	}

	s.metrics.RecordContentUpsert(ctx, kindWorld, outcome)
	s.log.InfoContext(ctx, "world upserted",
		slog.Int64("world_id", result.ID),
		slog.Int64("vision_id", result.VisionID),
		slog.String("outcome", outcome),
	)

	return result, outcome == metrics.OutcomeInserted, nil
}

func (s *Service) replaceWorld(ctx context.Context, holder *domain.World, input UpsertWorldInput, hash string) (*domain.World, error) {
	holder.HTML = input.HTML
	holder.ContentHash = &hash
	if input.WaxID != nil {
		holder.WaxID = input.WaxID
	}
	if title := domain.TrimOrNil(input.Title); title != nil {
		holder.Title = title
	}
	if len(input.Metadata) > 0 {
		holder.Metadata = input.Metadata
	}
	holder.StampUpdate(s.clock.Now())

	updated, err := s.worlds.Update(ctx, *holder)
	if err != nil {
		return nil, fmt.Errorf("rewrite world %d: %w", holder.ID, err)
	}
	return updated, nil
}
