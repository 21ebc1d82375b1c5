package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EssayVersion is an immutable numbered snapshot of an essay's text. The
// unique index on (essay_id, version) is what turns concurrent stale-read
// saves into a conflict instead of a silent overwrite.
type EssayVersion struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EssayID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_essay_version,unique" json:"essay_id"`
	Essay      *Essay         `gorm:"constraint:OnDelete:CASCADE;foreignKey:EssayID;references:ID" json:"-"`
	Version    int            `gorm:"not null;index:idx_essay_version,unique" json:"version"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	WordCount  int            `gorm:"column:word_count;not null;default:0" json:"word_count"`
	AIFeedback datatypes.JSON `gorm:"type:jsonb;column:ai_feedback" json:"ai_feedback,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (EssayVersion) TableName() string { return "essay_version" }
