package lifecycle

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/waxworks/internal/clock"
	"github.com/heartmarshall/waxworks/internal/config"
	"github.com/heartmarshall/waxworks/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type visionRepo interface {
	Create(ctx context.Context, v domain.Vision) (*domain.Vision, error)
	GetByID(ctx context.Context, id int64) (*domain.Vision, error)
	Lock(ctx context.Context, id int64) (*domain.Vision, error)
	FindByTextEmail(ctx context.Context, text string, email *string) (*domain.Vision, error)
	Update(ctx context.Context, v domain.Vision) (*domain.Vision, error)
	Delete(ctx context.Context, id int64) error
}

type pictureRepo interface {
	Create(ctx context.Context, p domain.Picture) (*domain.Picture, error)
	GetByID(ctx context.Context, id int64) (*domain.Picture, error)
	FindBySignature(ctx context.Context, visionID int64, title, description, email *string) (*domain.Picture, error)
	ListByVision(ctx context.Context, visionID int64) ([]*domain.Picture, error)
	Update(ctx context.Context, p domain.Picture) (*domain.Picture, error)
	Delete(ctx context.Context, id int64) error
}

type waxRepo interface {
	Delete(ctx context.Context, id int64) error
}

type worldRepo interface {
	Delete(ctx context.Context, id int64) error
}

type promptOutputRepo interface {
	Insert(ctx context.Context, p domain.PromptOutput) (*domain.PromptOutput, error)
	List(ctx context.Context, filter domain.PromptOutputFilter) ([]*domain.PromptOutput, error)
	CountByPicture(ctx context.Context, pictureID int64) ([]domain.CollectionCount, error)
}

type coreIdeaRepo interface {
	Create(ctx context.Context, c domain.CoreIdea) (*domain.CoreIdea, error)
	GetByID(ctx context.Context, id int64) (*domain.CoreIdea, error)
	Update(ctx context.Context, c domain.CoreIdea) (*domain.CoreIdea, error)
	List(ctx context.Context, filter domain.CoreIdeaFilter) ([]*domain.CoreIdea, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service creates, updates and deletes the content tree. Every create and
// update stamps timestamps from the injected clock; deletes rely on the
// store's cascade and nullify rules and run in one transaction.
type Service struct {
	log           *slog.Logger
	visions       visionRepo
	pictures      pictureRepo
	waxes         waxRepo
	worlds        worldRepo
	promptOutputs promptOutputRepo
	coreIdeas     coreIdeaRepo
	tx            txManager
	clock         clock.Clock
	cfg           config.ContentConfig
}

// NewService creates a new lifecycle service.
func NewService(
	logger *slog.Logger,
	visions visionRepo,
	pictures pictureRepo,
	waxes waxRepo,
	worlds worldRepo,
	promptOutputs promptOutputRepo,
	coreIdeas coreIdeaRepo,
	tx txManager,
	clk clock.Clock,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "lifecycle"),
		visions:       visions,
		pictures:      pictures,
		waxes:         waxes,
		worlds:        worlds,
		promptOutputs: promptOutputs,
		coreIdeas:     coreIdeas,
		tx:            tx,
		clock:         clk,
		cfg:           cfg,
	}
}

// clampLimit maps 0 to the configured default and caps at the maximum.
func (s *Service) clampLimit(limit int) int {
	maxLimit := s.cfg.MaxListLimit
	if maxLimit <= 0 {
		maxLimit = MaxListLimit
	}
	if limit <= 0 {
		limit = s.cfg.DefaultListLimit
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
