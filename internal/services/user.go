package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/types"
)

var validExamTypes = map[string]struct{}{
	"kcse":   {},
	"alevel": {},
	"both":   {},
}

type UserService interface {
	Get(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateAcademicScores(ctx context.Context, userID uuid.UUID, scores types.AcademicScores) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) Get(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

func (us *userService) UpdateAcademicScores(ctx context.Context, userID uuid.UUID, scores types.AcademicScores) (*types.User, error) {
	if scores.ExamType != "" {
		if _, ok := validExamTypes[scores.ExamType]; !ok {
			return nil, fmt.Errorf("%w: examType must be one of kcse, alevel, both", apperr.ErrValidation)
		}
	}
	for _, sg := range scores.KCSESubjects {
		if sg.Subject == "" {
			return nil, fmt.Errorf("%w: kcse subject name cannot be empty", apperr.ErrValidation)
		}
	}
	for _, sg := range scores.ALevelGrades {
		if sg.Subject == "" {
			return nil, fmt.Errorf("%w: a-level subject name cannot be empty", apperr.ErrValidation)
		}
	}

	raw, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("marshal academic scores: %w", err)
	}
	if err := us.userRepo.UpdateAcademicScores(ctx, nil, userID, datatypes.JSON(raw)); err != nil {
		return nil, err
	}
	return us.Get(ctx, userID)
}
