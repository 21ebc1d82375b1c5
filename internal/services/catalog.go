package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/clients/rediscache"
	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/types"
)

const (
	universitiesCacheKey = "directory:universities"
	scholarshipsCacheKey = "directory:scholarships"
	directoryCacheTTL    = 5 * time.Minute
)

// CatalogService serves the shared university/scholarship directory. Reads
// are public; writes only happen through the importer, idempotent on the
// external source id.
type CatalogService interface {
	ListUniversities(ctx context.Context) ([]*types.University, error)
	ListScholarships(ctx context.Context) ([]*types.Scholarship, error)
	UpsertUniversity(ctx context.Context, row *types.University) (*types.University, error)
	UpsertScholarship(ctx context.Context, row *types.Scholarship) (*types.Scholarship, error)
}

type catalogService struct {
	db              *gorm.DB
	log             *logger.Logger
	universityRepo  repos.UniversityRepo
	scholarshipRepo repos.ScholarshipRepo
	cache           rediscache.Cache
}

// NewCatalogService wires the directory. cache may be nil; listings then go
// straight to the database.
func NewCatalogService(db *gorm.DB, log *logger.Logger, universityRepo repos.UniversityRepo, scholarshipRepo repos.ScholarshipRepo, cache rediscache.Cache) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		db:              db,
		log:             serviceLog,
		universityRepo:  universityRepo,
		scholarshipRepo: scholarshipRepo,
		cache:           cache,
	}
}

func (cs *catalogService) ListUniversities(ctx context.Context) ([]*types.University, error) {
	var cached []*types.University
	if ok := cs.cacheGet(ctx, universitiesCacheKey, &cached); ok {
		return cached, nil
	}
	rows, err := cs.universityRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	cs.cacheSet(ctx, universitiesCacheKey, rows)
	return rows, nil
}

func (cs *catalogService) ListScholarships(ctx context.Context) ([]*types.Scholarship, error) {
	var cached []*types.Scholarship
	if ok := cs.cacheGet(ctx, scholarshipsCacheKey, &cached); ok {
		return cached, nil
	}
	rows, err := cs.scholarshipRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	cs.cacheSet(ctx, scholarshipsCacheKey, rows)
	return rows, nil
}

func (cs *catalogService) UpsertUniversity(ctx context.Context, row *types.University) (*types.University, error) {
	if row.Name == "" {
		return nil, fmt.Errorf("%w: university name is required", apperr.ErrValidation)
	}

	var out *types.University
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if row.ScorecardID != nil {
			existing, err := cs.universityRepo.GetByScorecardID(ctx, tx, *row.ScorecardID)
			if err != nil {
				return err
			}
			if existing != nil {
				row.ID = existing.ID
				row.CreatedAt = existing.CreatedAt
				saved, err := cs.universityRepo.Save(ctx, tx, row)
				if err != nil {
					return err
				}
				out = saved
				return nil
			}
		}
		created, err := cs.universityRepo.Create(ctx, tx, []*types.University{row})
		if err != nil {
			return err
		}
		out = created[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	cs.cacheInvalidate(ctx, universitiesCacheKey)
	return out, nil
}

func (cs *catalogService) UpsertScholarship(ctx context.Context, row *types.Scholarship) (*types.Scholarship, error) {
	if row.Name == "" {
		return nil, fmt.Errorf("%w: scholarship name is required", apperr.ErrValidation)
	}

	var out *types.Scholarship
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if row.IEFAID != nil && *row.IEFAID != "" {
			existing, err := cs.scholarshipRepo.GetByIEFAID(ctx, tx, *row.IEFAID)
			if err != nil {
				return err
			}
			if existing != nil {
				row.ID = existing.ID
				row.CreatedAt = existing.CreatedAt
				saved, err := cs.scholarshipRepo.Save(ctx, tx, row)
				if err != nil {
					return err
				}
				out = saved
				return nil
			}
		}
		created, err := cs.scholarshipRepo.Create(ctx, tx, []*types.Scholarship{row})
		if err != nil {
			return err
		}
		out = created[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	cs.cacheInvalidate(ctx, scholarshipsCacheKey)
	return out, nil
}

func (cs *catalogService) cacheGet(ctx context.Context, key string, out any) bool {
	if cs.cache == nil {
		return false
	}
	raw, err := cs.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, rediscache.ErrMiss) {
			cs.log.Warn("Directory cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		cs.log.Warn("Directory cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (cs *catalogService) cacheSet(ctx context.Context, key string, rows any) {
	if cs.cache == nil {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := cs.cache.Set(ctx, key, raw, directoryCacheTTL); err != nil {
		cs.log.Warn("Directory cache write failed", "key", key, "error", err)
	}
}

func (cs *catalogService) cacheInvalidate(ctx context.Context, key string) {
	if cs.cache == nil {
		return
	}
	if err := cs.cache.Invalidate(ctx, key); err != nil {
		cs.log.Warn("Directory cache invalidation failed", "key", key, "error", err)
	}
}
