package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AcademicScores holds the exam results used for university matching.
// Stored as jsonb; shape validated at the profile boundary.
type AcademicScores struct {
	ExamType      string         `json:"examType,omitempty"`
	KCSEGrade     string         `json:"kcseGrade,omitempty"`
	KCSEPoints    int            `json:"kcsePoints,omitempty"`
	KCSESubjects  []SubjectGrade `json:"kcseSubjects,omitempty"`
	ALevelGrades  []SubjectGrade `json:"aLevelGrades,omitempty"`
	ALevelPoints  int            `json:"aLevelPoints,omitempty"`
	IntendedMajor string         `json:"intendedMajor,omitempty"`
}

type SubjectGrade struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email           string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password        string         `gorm:"not null;column:password" json:"-"`
	FirstName       string         `gorm:"column:first_name" json:"first_name"`
	LastName        string         `gorm:"column:last_name" json:"last_name"`
	ProfileImageURL string         `gorm:"column:profile_image_url" json:"profile_image_url"`
	AcademicScores  datatypes.JSON `gorm:"type:jsonb;column:academic_scores" json:"academic_scores,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string { return "user" }
