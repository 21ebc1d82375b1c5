package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

type RoadmapProgressRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.RoadmapProgress, error)
	GetByUserPhase(ctx context.Context, tx *gorm.DB, userID uuid.UUID, phase string) (*types.RoadmapProgress, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapProgress) ([]*types.RoadmapProgress, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.RoadmapProgress) (*types.RoadmapProgress, error)
}

type roadmapProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapProgressRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapProgressRepo {
	repoLog := baseLog.With("repo", "RoadmapProgressRepo")
	return &roadmapProgressRepo{db: db, log: repoLog}
}

func (rpr *roadmapProgressRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.RoadmapProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = rpr.db
	}
	var results []*types.RoadmapProgress
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rpr *roadmapProgressRepo) GetByUserPhase(ctx context.Context, tx *gorm.DB, userID uuid.UUID, phase string) (*types.RoadmapProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = rpr.db
	}
	var result types.RoadmapProgress
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND phase = ?", userID, phase).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (rpr *roadmapProgressRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.RoadmapProgress) ([]*types.RoadmapProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = rpr.db
	}
	if len(rows) == 0 {
		return []*types.RoadmapProgress{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (rpr *roadmapProgressRepo) Save(ctx context.Context, tx *gorm.DB, row *types.RoadmapProgress) (*types.RoadmapProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = rpr.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.RoadmapProgress{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"checklist":  row.Checklist,
			"completed":  row.Completed,
			"notes":      row.Notes,
			"updated_at": gorm.Expr("now()"),
		}).Error; err != nil {
		return nil, err
	}
	return rpr.GetByUserPhase(ctx, transaction, row.UserID, row.Phase)
}
