package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/somapath/somapath-backend/internal/config"
	"github.com/somapath/somapath-backend/internal/platform/apperr"
	"github.com/somapath/somapath-backend/internal/platform/logger"
	"github.com/somapath/somapath-backend/internal/repos"
	"github.com/somapath/somapath-backend/internal/types"
)

type UpsertRoadmapInput struct {
	Phase     string                `json:"phase"`
	Checklist []types.ChecklistItem `json:"checklist"`
	Notes     *string               `json:"notes"`
}

// RoadmapService tracks per-user journey phase checklists. Rows are created
// lazily, seeded from the phase templates; the completed flag is always
// derived from the checklist, never taken from the caller.
type RoadmapService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.RoadmapProgress, error)
	Upsert(ctx context.Context, userID uuid.UUID, input UpsertRoadmapInput) (*types.RoadmapProgress, error)
}

type roadmapService struct {
	db          *gorm.DB
	log         *logger.Logger
	roadmapRepo repos.RoadmapProgressRepo
	phases      *config.RoadmapConfig
}

func NewRoadmapService(db *gorm.DB, log *logger.Logger, roadmapRepo repos.RoadmapProgressRepo, phases *config.RoadmapConfig) RoadmapService {
	serviceLog := log.With("service", "RoadmapService")
	return &roadmapService{
		db:          db,
		log:         serviceLog,
		roadmapRepo: roadmapRepo,
		phases:      phases,
	}
}

func (rs *roadmapService) List(ctx context.Context, userID uuid.UUID) ([]*types.RoadmapProgress, error) {
	return rs.roadmapRepo.ListByUser(ctx, nil, userID)
}

func (rs *roadmapService) Upsert(ctx context.Context, userID uuid.UUID, input UpsertRoadmapInput) (*types.RoadmapProgress, error) {
	tpl := rs.phases.Template(input.Phase)
	if tpl == nil {
		return nil, fmt.Errorf("%w: unknown phase %q", apperr.ErrValidation, input.Phase)
	}

	var out *types.RoadmapProgress
	err := rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := rs.roadmapRepo.GetByUserPhase(ctx, tx, userID, input.Phase)
		if err != nil {
			return err
		}

		if row == nil {
			row = &types.RoadmapProgress{
				ID:        uuid.New(),
				UserID:    userID,
				Phase:     input.Phase,
				Checklist: datatypes.NewJSONSlice(SeedChecklist(tpl)),
			}
			if _, err := rs.roadmapRepo.Create(ctx, tx, []*types.RoadmapProgress{row}); err != nil {
				return err
			}
		}

		checklist := ApplyChecklist([]types.ChecklistItem(row.Checklist), input.Checklist)
		row.Checklist = datatypes.NewJSONSlice(checklist)
		row.Completed = AllCompleted(checklist)
		if input.Notes != nil {
			row.Notes = *input.Notes
		}

		saved, err := rs.roadmapRepo.Save(ctx, tx, row)
		if err != nil {
			return err
		}
		out = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SeedChecklist builds the initial, all-unchecked checklist for a phase.
func SeedChecklist(tpl *config.PhaseTemplate) []types.ChecklistItem {
	items := make([]types.ChecklistItem, 0, len(tpl.Checklist))
	for _, item := range tpl.Checklist {
		items = append(items, types.ChecklistItem{Item: item})
	}
	return items
}

// ApplyChecklist overlays the caller's completion toggles onto the current
// checklist, matched by item text. Items the caller does not mention keep
// their state; items not in the current checklist are ignored.
func ApplyChecklist(current, incoming []types.ChecklistItem) []types.ChecklistItem {
	if len(incoming) == 0 {
		return current
	}
	toggles := make(map[string]bool, len(incoming))
	for _, item := range incoming {
		toggles[item.Item] = item.Completed
	}
	out := make([]types.ChecklistItem, len(current))
	copy(out, current)
	for i := range out {
		if done, ok := toggles[out[i].Item]; ok {
			out[i].Completed = done
		}
	}
	return out
}

// AllCompleted is the derived phase-completion rule.
func AllCompleted(items []types.ChecklistItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.Completed {
			return false
		}
	}
	return true
}
