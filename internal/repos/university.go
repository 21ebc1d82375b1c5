package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

type UniversityRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.University, error)
	GetByScorecardID(ctx context.Context, tx *gorm.DB, scorecardID int) (*types.University, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.University) ([]*types.University, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.University) (*types.University, error)
}

type universityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUniversityRepo(db *gorm.DB, baseLog *logger.Logger) UniversityRepo {
	repoLog := baseLog.With("repo", "UniversityRepo")
	return &universityRepo{db: db, log: repoLog}
}

func (ur *universityRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.University, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.University
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *universityRepo) GetByScorecardID(ctx context.Context, tx *gorm.DB, scorecardID int) (*types.University, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var result types.University
	if err := transaction.WithContext(ctx).
		Where("scorecard_id = ?", scorecardID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (ur *universityRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.University) ([]*types.University, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(rows) == 0 {
		return []*types.University{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (ur *universityRepo) Save(ctx context.Context, tx *gorm.DB, row *types.University) (*types.University, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	row.UpdatedAt = time.Now()
	if err := transaction.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
