package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteWax removes a wax. Worlds rendered from it are kept with wax_id
// cleared.
func (s *Service) DeleteWax(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.waxes.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete wax: %w", err)
	}

	s.log.InfoContext(ctx, "wax deleted", slog.Int64("wax_id", id))
	return nil
}

// DeleteWorld removes a world.
func (s *Service) DeleteWorld(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.worlds.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete world: %w", err)
	}

	s.log.InfoContext(ctx, "world deleted", slog.Int64("world_id", id))
	return nil
}
