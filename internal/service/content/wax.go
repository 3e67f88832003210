package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/internal/observability/metrics"
)

// appendSeparator joins old and new content under ConflictAppend.
const appendSeparator = "\n\n"

// UpsertWaxByHash stores a wax keyed by the hash of its content.
//
// A wax with the same hash is returned unchanged with wasNew=false. Otherwise,
// when the (picture, email) slot is already held by a different wax,
// input.OnConflict decides: ConflictFail returns domain.ErrAlreadyExists,
// ConflictReplace rewrites the holder in place, ConflictAppend appends the
// new content to the holder's unless the holder already ends with it. Both
// rewrite paths return wasNew=false.
func (s *Service) UpsertWaxByHash(ctx context.Context, input UpsertWaxInput) (*domain.Wax, bool, error) {
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	hash := domain.ContentHash(domain.HashKindWax, input.Content)
	email := authorEmail(ctx, input.Email)
	policy := input.OnConflict.OrDefault()

	var (
		result  *domain.Wax
		outcome string
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkParents(txCtx, input.VisionID, input.PictureID); err != nil {
			return err
		}

		existing, err := s.waxes.GetByHash(txCtx, hash)
		if err == nil {
			result, outcome = existing, metrics.OutcomeExisting
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find wax by hash: %w", err)
		}

		if input.PictureID != nil {
			holder, err := s.waxes.GetByPictureEmail(txCtx, *input.PictureID, email)
			switch {
			case err == nil:
				result, outcome, err = s.resolveWaxSlot(txCtx, holder, input, policy)
				return err
			case !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("find wax by picture: %w", err)
			}
		}

		w := domain.Wax{
			VisionID:    input.VisionID,
			PictureID:   input.PictureID,
			Title:       domain.TrimOrNil(input.Title),
			Content:     input.Content,
			ContentHash: hash,
			Email:       email,
			Source:      domain.TrimOrNil(input.Source),
			Status:      statusOrDraft(input.Status),
			Metadata:    input.Metadata,
		}
		w.StampCreate(s.clock.Now())

		stored, inserted, err := s.waxes.InsertIfAbsent(txCtx, w)
		if err != nil {
			return fmt.Errorf("insert wax: %w", err)
		}
		result, outcome = stored, metrics.OutcomeExisting
		if inserted {
			outcome = metrics.OutcomeInserted
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.log.WarnContext(ctx, "wax slot taken",
				slog.Int64("vision_id", input.VisionID),
				slog.String("error", err.Error()),
			)
		}
		return nil, false, err
	}

	s.metrics.RecordContentUpsert(ctx, kindWax, outcome)
	s.log.InfoContext(ctx, "wax upserted",
		slog.Int64("wax_id", result.ID),
		slog.Int64("vision_id", result.VisionID),
		slog.String("outcome", outcome),
	)

	return result, outcome == metrics.OutcomeInserted, nil
}

// resolveWaxSlot applies policy to the wax already holding the slot.
func (s *Service) resolveWaxSlot(
	ctx context.Context,
	holder *domain.Wax,
	input UpsertWaxInput,
	policy domain.ConflictPolicy,
) (*domain.Wax, string, error) {
	var outcome string

	switch policy {
	case domain.ConflictReplace:
		holder.Content = input.Content
		outcome = metrics.OutcomeReplaced
	case domain.ConflictAppend:
		if endsWithAppended(holder.Content, input.Content) {
			return holder, metrics.OutcomeExisting, nil
		}
		holder.Content = strings.TrimRight(holder.Content, "\n") + appendSeparator + input.Content
		outcome = metrics.OutcomeAppended
	default:
		return nil, "", fmt.Errorf("wax %d holds picture %d for this author: %w",
			holder.ID, *input.PictureID, domain.ErrAlreadyExists)
	}

	holder.ContentHash = domain.ContentHash(domain.HashKindWax, holder.Content)
	if title := domain.TrimOrNil(input.Title); title != nil {
		holder.Title = title
	}
	if len(input.Metadata) > 0 {
		holder.Metadata = input.Metadata
	}
	holder.StampUpdate(s.clock.Now())

	updated, err := s.waxes.UpdateContent(ctx, *holder)
	if err != nil {
		return nil, "", fmt.Errorf("rewrite wax %d: %w", holder.ID, err)
	}
	return updated, outcome, nil
}

// endsWithAppended reports whether content already ends with an appended
// block equal to addition, compared after normalization.
func endsWithAppended(content, addition string) bool {
	c := domain.NormalizeContent(content)
	a := domain.NormalizeContent(addition)
	return c == a || strings.HasSuffix(c, appendSeparator+a)
}

func statusOrDraft(status domain.ContentStatus) domain.ContentStatus {
	if status == "" {
		return domain.ContentStatusDraft
	}
	return status
}
