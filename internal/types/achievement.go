package types

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"size:100" json:"icon,omitempty"`
	Category    string    `gorm:"size:100" json:"category,omitempty"`
	Criteria    string    `gorm:"type:text" json:"criteria,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Achievement) TableName() string { return "achievement" }

type UserAchievement struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_user_achievement,unique" json:"user_id"`
	User          *User        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	AchievementID uuid.UUID    `gorm:"type:uuid;not null;index:idx_user_achievement,unique" json:"achievement_id"`
	Achievement   *Achievement `gorm:"constraint:OnDelete:CASCADE;foreignKey:AchievementID;references:ID" json:"achievement,omitempty"`
	EarnedAt      time.Time    `gorm:"column:earned_at;not null;default:now()" json:"earned_at"`
}

func (UserAchievement) TableName() string { return "user_achievement" }
