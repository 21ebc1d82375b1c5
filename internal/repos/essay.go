package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

type EssayRepo interface {
	Create(ctx context.Context, tx *gorm.DB, essays []*types.Essay) ([]*types.Essay, error)
	// GetByIDForUser returns nil when the essay does not exist or belongs to a
	// different user; callers must not be able to tell the two apart.
	GetByIDForUser(ctx context.Context, tx *gorm.DB, essayID, userID uuid.UUID) (*types.Essay, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Essay, error)
	// UpdateFields applies the given column updates scoped to (essayID, userID)
	// and reports whether a row matched.
	UpdateFields(ctx context.Context, tx *gorm.DB, essayID, userID uuid.UUID, fields map[string]any) (bool, error)
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, essayIDs []uuid.UUID) error
}

type essayRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEssayRepo(db *gorm.DB, baseLog *logger.Logger) EssayRepo {
	repoLog := baseLog.With("repo", "EssayRepo")
	return &essayRepo{db: db, log: repoLog}
}

func (er *essayRepo) Create(ctx context.Context, tx *gorm.DB, essays []*types.Essay) ([]*types.Essay, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(essays) == 0 {
		return []*types.Essay{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&essays).Error; err != nil {
		return nil, err
	}
	return essays, nil
}

func (er *essayRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, essayID, userID uuid.UUID) (*types.Essay, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var result types.Essay
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", essayID, userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (er *essayRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Essay, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Essay
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *essayRepo) UpdateFields(ctx context.Context, tx *gorm.DB, essayID, userID uuid.UUID, fields map[string]any) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(fields) == 0 {
		fields = map[string]any{}
	}
	fields["updated_at"] = gorm.Expr("now()")
	result := transaction.WithContext(ctx).
		Model(&types.Essay{}).
		Where("id = ? AND user_id = ?", essayID, userID).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (er *essayRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, essayIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(essayIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", essayIDs).
		Delete(&types.Essay{}).Error
}
