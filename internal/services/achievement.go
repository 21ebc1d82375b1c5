package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/types"
)

// AchievementService is a read path for earned badges; awarding happens in
// background jobs, not through a user-facing endpoint.
type AchievementService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.UserAchievement, error)
	Award(ctx context.Context, userID, achievementID uuid.UUID) (*types.UserAchievement, error)
}

type achievementService struct {
	db              *gorm.DB
	log             *logger.Logger
	achievementRepo repos.AchievementRepo
}

func NewAchievementService(db *gorm.DB, log *logger.Logger, achievementRepo repos.AchievementRepo) AchievementService {
	serviceLog := log.With("service", "AchievementService")
	return &achievementService{db: db, log: serviceLog, achievementRepo: achievementRepo}
}

func (s *achievementService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*types.UserAchievement, error) {
	return s.achievementRepo.ListForUser(ctx, nil, userID)
}

func (s *achievementService) Award(ctx context.Context, userID, achievementID uuid.UUID) (*types.UserAchievement, error) {
	row := &types.UserAchievement{
		ID:            uuid.New(),
		UserID:        userID,
		AchievementID: achievementID,
	}
	awarded, err := s.achievementRepo.Award(ctx, nil, []*types.UserAchievement{row})
	if err != nil {
		return nil, err
	}
	return awarded[0], nil
}
