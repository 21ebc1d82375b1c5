package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/types"
)

type ScholarshipRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.Scholarship, error)
	GetByIEFAID(ctx context.Context, tx *gorm.DB, iefaID string) (*types.Scholarship, error)
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Scholarship) ([]*types.Scholarship, error)
	Save(ctx context.Context, tx *gorm.DB, row *types.Scholarship) (*types.Scholarship, error)
}

type scholarshipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScholarshipRepo(db *gorm.DB, baseLog *logger.Logger) ScholarshipRepo {
	repoLog := baseLog.With("repo", "ScholarshipRepo")
	return &scholarshipRepo{db: db, log: repoLog}
}

func (sr *scholarshipRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Scholarship, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Scholarship
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *scholarshipRepo) GetByIEFAID(ctx context.Context, tx *gorm.DB, iefaID string) (*types.Scholarship, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.Scholarship
	if err := transaction.WithContext(ctx).
		Where("iefa_id = ?", iefaID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (sr *scholarshipRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Scholarship) ([]*types.Scholarship, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(rows) == 0 {
		return []*types.Scholarship{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (sr *scholarshipRepo) Save(ctx context.Context, tx *gorm.DB, row *types.Scholarship) (*types.Scholarship, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	row.UpdatedAt = time.Now()
	if err := transaction.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
