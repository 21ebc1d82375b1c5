package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

const uniqueViolation = "23505"

type EssayVersionRepo interface {
	// Create appends version rows. A duplicate (essay_id, version) pair maps
	// to apperr.ErrVersionConflict so concurrent stale-read saves surface as a
	// retryable collision rather than a silent overwrite.
	Create(ctx context.Context, tx *gorm.DB, versions []*types.EssayVersion) ([]*types.EssayVersion, error)
	ListByEssay(ctx context.Context, tx *gorm.DB, essayID uuid.UUID) ([]*types.EssayVersion, error)
	// Latest returns the row with the highest version number, nil when the
	// essay has no versions at all.
	Latest(ctx context.Context, tx *gorm.DB, essayID uuid.UUID) (*types.EssayVersion, error)
	MaxVersion(ctx context.Context, tx *gorm.DB, essayID uuid.UUID) (int, error)
}

type essayVersionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEssayVersionRepo(db *gorm.DB, baseLog *logger.Logger) EssayVersionRepo {
	repoLog := baseLog.With("repo", "EssayVersionRepo")
	return &essayVersionRepo{db: db, log: repoLog}
}

func (evr *essayVersionRepo) Create(ctx context.Context, tx *gorm.DB, versions []*types.EssayVersion) ([]*types.EssayVersion, error) {
	transaction := tx
	if transaction == nil {
		transaction = evr.db
	}
	if len(versions) == 0 {
		return []*types.EssayVersion{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&versions).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %v", apperr.ErrVersionConflict, err)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %v", apperr.ErrVersionConflict, err)
		}
		return nil, err
	}
	return versions, nil
}

func (evr *essayVersionRepo) ListByEssay(ctx context.Context, tx *gorm.DB, essayID uuid.UUID) ([]*types.EssayVersion, error) {
	transaction := tx
	if transaction == nil {
		transaction = evr.db
	}
	var results []*types.EssayVersion
	if err := transaction.WithContext(ctx).
		Where("essay_id = ?", essayID).
		Order("version DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (evr *essayVersionRepo) Latest(ctx context.Context, tx *gorm.DB, essayID uuid.UUID) (*types.EssayVersion, error) {
	transaction := tx
	if transaction == nil {
		transaction = evr.db
	}
	var result types.EssayVersion
	if err := transaction.WithContext(ctx).
		Where("essay_id = ?", essayID).
		Order("version DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (evr *essayVersionRepo) MaxVersion(ctx context.Context, tx *gorm.DB, essayID uuid.UUID) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = evr.db
	}
	var max int
	if err := transaction.WithContext(ctx).
		Model(&types.EssayVersion{}).
		Where("essay_id = ?", essayID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}
