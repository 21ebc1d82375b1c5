package types

import (
	"time"

	"github.com/google/uuid"
)

// Essay is the aggregate root for one application essay. Content never lives
// here; it lives in the numbered EssayVersion snapshots. CurrentVersion is a
// pointer into those snapshots, not a count.
type Essay struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Prompt         string    `gorm:"type:text" json:"prompt,omitempty"`
	CurrentVersion int       `gorm:"column:current_version;not null;default:1" json:"current_version"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now();index" json:"updated_at"`
}

func (Essay) TableName() string { return "essay" }
