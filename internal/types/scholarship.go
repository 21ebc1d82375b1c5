package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Scholarship mirrors University: read-mostly, written only by the importer,
// IEFAID is the external idempotency key.
type Scholarship struct {
	ID                uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	IEFAID            *string                     `gorm:"column:iefa_id;size:100;uniqueIndex" json:"iefa_id,omitempty"`
	Name              string                      `gorm:"size:255;not null" json:"name"`
	Organization      string                      `gorm:"size:255" json:"organization,omitempty"`
	AmountUSD         *int                        `gorm:"column:amount_usd" json:"amount_usd,omitempty"`
	AmountRange       string                      `gorm:"size:100;column:amount_range" json:"amount_range,omitempty"`
	Eligibility       string                      `gorm:"type:text" json:"eligibility,omitempty"`
	Deadline          string                      `gorm:"size:100" json:"deadline,omitempty"`
	ApplicationURL    string                      `gorm:"size:500;column:application_url" json:"application_url,omitempty"`
	ForKenyanStudents bool                        `gorm:"column:for_kenyan_students;not null;default:true" json:"for_kenyan_students"`
	NeedBased         bool                        `gorm:"column:need_based;not null;default:false" json:"need_based"`
	MeritBased        bool                        `gorm:"column:merit_based;not null;default:false" json:"merit_based"`
	FieldOfStudy      string                      `gorm:"size:255;column:field_of_study" json:"field_of_study,omitempty"`
	HostCountries     datatypes.JSONSlice[string] `gorm:"type:jsonb;column:host_countries" json:"host_countries,omitempty"`
	Nationality       string                      `gorm:"size:255" json:"nationality,omitempty"`
	Description       string                      `gorm:"type:text" json:"description,omitempty"`
	CreatedAt         time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Scholarship) TableName() string { return "scholarship" }
