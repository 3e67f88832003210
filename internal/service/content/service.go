package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/clock"
	"github.com/heartmarshall/waxworks/internal/domain"
	"github.com/heartmarshall/waxworks/pkg/ctxutil"
)

// Metric kinds reported by the deduplicator.
const (
	kindWax   = "wax"
	kindWorld = "world"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type visionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Vision, error)
}

type pictureRepo interface {
	Lock(ctx context.Context, id int64) (*domain.Picture, error)
}

type waxRepo interface {
	InsertIfAbsent(ctx context.Context, w domain.Wax) (*domain.Wax, bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Wax, error)
	GetByHash(ctx context.Context, hash string) (*domain.Wax, error)
	GetByPictureEmail(ctx context.Context, pictureID int64, email *string) (*domain.Wax, error)
	UpdateContent(ctx context.Context, w domain.Wax) (*domain.Wax, error)
}

type worldRepo interface {
	LockHash(ctx context.Context, hash string) error
	Insert(ctx context.Context, w domain.World) (*domain.World, error)
	GetByHash(ctx context.Context, hash string) (*domain.World, error)
	GetByPictureEmail(ctx context.Context, pictureID int64, email *string) (*domain.World, error)
	Update(ctx context.Context, w domain.World) (*domain.World, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type contentMetrics interface {
	RecordContentUpsert(ctx context.Context, kind, outcome string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service stores waxes and worlds keyed by the hash of their content, so a
// retried generation step never produces a second row.
type Service struct {
	log      *slog.Logger
	visions  visionRepo
	pictures pictureRepo
	waxes    waxRepo
	worlds   worldRepo
	tx       txManager
	clock    clock.Clock
	metrics  contentMetrics
}

// NewService creates a new content service.
func NewService(
	logger *slog.Logger,
	visions visionRepo,
	pictures pictureRepo,
	waxes waxRepo,
	worlds worldRepo,
	tx txManager,
	clk clock.Clock,
	metrics contentMetrics,
) *Service {
	return &Service{
		log:      logger.With("service", "content"),
		visions:  visions,
		pictures: pictures,
		waxes:    waxes,
		worlds:   worlds,
		tx:       tx,
		clock:    clk,
		metrics:  metrics,
	}
}

// ---------------------------------------------------------------------------
// Parent checks (private, called inside tx)
// ---------------------------------------------------------------------------

// checkParents verifies the vision exists and, when pictureID is set, locks
// the picture and checks that it belongs to the same vision. The picture lock
// serializes writers competing for one (picture, email) slot.
func (s *Service) checkParents(ctx context.Context, visionID int64, pictureID *int64) error {
	if _, err := s.visions.GetByID(ctx, visionID); err != nil {
		return err
	}
	if pictureID == nil {
		return nil
	}

	pic, err := s.pictures.Lock(ctx, *pictureID)
	if err != nil {
		return err
	}
	if pic.VisionID != visionID {
		return domain.NewValidationError("picture_id",
			fmt.Sprintf("picture %d belongs to vision %d", pic.ID, pic.VisionID))
	}
	return nil
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
