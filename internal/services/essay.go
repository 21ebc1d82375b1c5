package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/types"
)

// EssayWithContent pairs an essay with its latest version's text for the
// editor. Content is resolved by MAX(version), not the CurrentVersion
// pointer, so pointer drift never hides newer text.
type EssayWithContent struct {
	types.Essay
	Content string `json:"content"`
}

type UpdateEssayInput struct {
	Title          *string `json:"title"`
	Prompt         *string `json:"prompt"`
	CurrentVersion *int    `json:"current_version"`
}

type SaveVersionInput struct {
	Version    int            `json:"version"`
	Content    string         `json:"content"`
	AIFeedback datatypes.JSON `json:"ai_feedback,omitempty"`
}

// EssayService owns the essay aggregate: metadata plus the append-only
// version ledger. Every read and write is owner-scoped.
type EssayService interface {
	Create(ctx context.Context, userID uuid.UUID, title, prompt string) (*types.Essay, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Essay, error)
	Get(ctx context.Context, userID, essayID uuid.UUID) (*EssayWithContent, error)
	Update(ctx context.Context, userID, essayID uuid.UUID, input UpdateEssayInput) (*types.Essay, error)
	ListVersions(ctx context.Context, userID, essayID uuid.UUID) ([]*types.EssayVersion, error)
	SaveVersion(ctx context.Context, userID, essayID uuid.UUID, input SaveVersionInput) (*types.EssayVersion, error)
}

type essayService struct {
	db          *gorm.DB
	log         *logger.Logger
	essayRepo   repos.EssayRepo
	versionRepo repos.EssayVersionRepo
}

func NewEssayService(db *gorm.DB, log *logger.Logger, essayRepo repos.EssayRepo, versionRepo repos.EssayVersionRepo) EssayService {
	serviceLog := log.With("service", "EssayService")
	return &essayService{
		db:          db,
		log:         serviceLog,
		essayRepo:   essayRepo,
		versionRepo: versionRepo,
	}
}

// CountWords is the word-count rule used everywhere a version is written:
// whitespace-split token count.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

func (es *essayService) Create(ctx context.Context, userID uuid.UUID, title, prompt string) (*types.Essay, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}

	essay := &types.Essay{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          title,
		Prompt:         prompt,
		CurrentVersion: 1,
	}

	// An essay must never exist without a version, so both rows are written
	// in one transaction.
	if err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := es.essayRepo.Create(ctx, tx, []*types.Essay{essay}); err != nil {
			return fmt.Errorf("create essay: %w", err)
		}
		initial := &types.EssayVersion{
			ID:        uuid.New(),
			EssayID:   essay.ID,
			Version:   1,
			Content:   "",
			WordCount: 0,
		}
		if _, err := es.versionRepo.Create(ctx, tx, []*types.EssayVersion{initial}); err != nil {
			return fmt.Errorf("create initial version: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return essay, nil
}

func (es *essayService) List(ctx context.Context, userID uuid.UUID) ([]*types.Essay, error) {
	return es.essayRepo.ListByUser(ctx, nil, userID)
}

func (es *essayService) Get(ctx context.Context, userID, essayID uuid.UUID) (*EssayWithContent, error) {
	essay, err := es.essayRepo.GetByIDForUser(ctx, nil, essayID, userID)
	if err != nil {
		return nil, err
	}
	if essay == nil {
		return nil, apperr.ErrNotFound
	}

	latest, err := es.versionRepo.Latest(ctx, nil, essayID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		es.log.Error("Essay has zero versions", "essay_id", essayID)
		return nil, fmt.Errorf("%w: essay %s has no versions", apperr.ErrDataIntegrity, essayID)
	}

	return &EssayWithContent{Essay: *essay, Content: latest.Content}, nil
}

func (es *essayService) Update(ctx context.Context, userID, essayID uuid.UUID, input UpdateEssayInput) (*types.Essay, error) {
	fields := map[string]any{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", apperr.ErrValidation)
		}
		fields["title"] = title
	}
	if input.Prompt != nil {
		fields["prompt"] = *input.Prompt
	}
	if input.CurrentVersion != nil {
		if *input.CurrentVersion < 1 {
			return nil, fmt.Errorf("%w: current_version must be >= 1", apperr.ErrValidation)
		}
		fields["current_version"] = *input.CurrentVersion
	}

	matched, err := es.essayRepo.UpdateFields(ctx, nil, essayID, userID, fields)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, apperr.ErrNotFound
	}

	essay, err := es.essayRepo.GetByIDForUser(ctx, nil, essayID, userID)
	if err != nil {
		return nil, err
	}
	if essay == nil {
		return nil, apperr.ErrNotFound
	}
	return essay, nil
}

func (es *essayService) ListVersions(ctx context.Context, userID, essayID uuid.UUID) ([]*types.EssayVersion, error) {
	essay, err := es.essayRepo.GetByIDForUser(ctx, nil, essayID, userID)
	if err != nil {
		return nil, err
	}
	if essay == nil {
		return nil, apperr.ErrNotFound
	}
	return es.versionRepo.ListByEssay(ctx, nil, essayID)
}

func (es *essayService) SaveVersion(ctx context.Context, userID, essayID uuid.UUID, input SaveVersionInput) (*types.EssayVersion, error) {
	if input.Version < 1 {
		return nil, fmt.Errorf("%w: version must be >= 1", apperr.ErrValidation)
	}

	essay, err := es.essayRepo.GetByIDForUser(ctx, nil, essayID, userID)
	if err != nil {
		return nil, err
	}
	if essay == nil {
		return nil, apperr.ErrNotFound
	}

	version := &types.EssayVersion{
		ID:         uuid.New(),
		EssayID:    essayID,
		Version:    input.Version,
		Content:    input.Content,
		WordCount:  CountWords(input.Content),
		AIFeedback: input.AIFeedback,
	}

	if err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := es.versionRepo.Create(ctx, tx, []*types.EssayVersion{version}); err != nil {
			return err
		}
		matched, err := es.essayRepo.UpdateFields(ctx, tx, essayID, userID, map[string]any{
			"current_version": input.Version,
		})
		if err != nil {
			return err
		}
		if !matched {
			return apperr.ErrNotFound
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return version, nil
}
