package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChecklistItem struct {
	Item      string `json:"item"`
	Completed bool   `json:"completed"`
}

// RoadmapProgress is one user's state for one journey phase. Rows are created
// lazily on first interaction; Completed is always recomputed from the
// checklist server-side, never trusted from the client.
type RoadmapProgress struct {
	ID        uuid.UUID                          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID                          `gorm:"type:uuid;not null;index:idx_user_phase,unique" json:"user_id"`
	User      *User                              `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Phase     string                             `gorm:"size:50;not null;index:idx_user_phase,unique" json:"phase"`
	Completed bool                               `gorm:"not null;default:false" json:"completed"`
	Checklist datatypes.JSONSlice[ChecklistItem] `gorm:"type:jsonb;not null" json:"checklist"`
	Notes     string                             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time                          `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time                          `gorm:"not null;default:now()" json:"updated_at"`
}

func (RoadmapProgress) TableName() string { return "roadmap_progress" }
