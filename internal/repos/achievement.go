package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

type AchievementRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Achievement) ([]*types.Achievement, error)
	ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserAchievement, error)
	Award(ctx context.Context, tx *gorm.DB, rows []*types.UserAchievement) ([]*types.UserAchievement, error)
}

type achievementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAchievementRepo(db *gorm.DB, baseLog *logger.Logger) AchievementRepo {
	repoLog := baseLog.With("repo", "AchievementRepo")
	return &achievementRepo{db: db, log: repoLog}
}

func (ar *achievementRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Achievement) ([]*types.Achievement, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if len(rows) == 0 {
		return []*types.Achievement{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (ar *achievementRepo) ListForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserAchievement, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.UserAchievement
	if err := transaction.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *achievementRepo) Award(ctx context.Context, tx *gorm.DB, rows []*types.UserAchievement) ([]*types.UserAchievement, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if len(rows) == 0 {
		return []*types.UserAchievement{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
