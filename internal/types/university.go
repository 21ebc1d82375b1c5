package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// University is a read-mostly directory record. ScorecardID is the College
// Scorecard identity used as the idempotency key for imports; at most one row
// may exist per external id.
type University struct {
	ID                      uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ScorecardID             *int                        `gorm:"column:scorecard_id;uniqueIndex" json:"scorecard_id,omitempty"`
	Name                    string                      `gorm:"size:255;not null" json:"name"`
	City                    string                      `gorm:"size:100" json:"city,omitempty"`
	State                   string                      `gorm:"size:50" json:"state,omitempty"`
	Location                string                      `gorm:"size:255" json:"location,omitempty"`
	Type                    string                      `gorm:"size:100" json:"type,omitempty"`
	AcceptanceRate          *int                        `gorm:"column:acceptance_rate" json:"acceptance_rate,omitempty"`
	AverageKCSEScore        *int                        `gorm:"column:average_kcse_score" json:"average_kcse_score,omitempty"`
	TuitionInState          *int                        `gorm:"column:tuition_in_state" json:"tuition_in_state,omitempty"`
	TuitionOutOfState       *int                        `gorm:"column:tuition_out_of_state" json:"tuition_out_of_state,omitempty"`
	TuitionUSD              *int                        `gorm:"column:tuition_usd" json:"tuition_usd,omitempty"`
	FinancialAidAvailable   bool                        `gorm:"column:financial_aid_available;not null;default:false" json:"financial_aid_available"`
	MeetFullNeed            bool                        `gorm:"column:meet_full_need;not null;default:false" json:"meet_full_need"`
	ApplicationDeadline     string                      `gorm:"size:100" json:"application_deadline,omitempty"`
	MajorsOffered           datatypes.JSONSlice[string] `gorm:"type:jsonb;column:majors_offered" json:"majors_offered,omitempty"`
	WebsiteURL              string                      `gorm:"size:500;column:website_url" json:"website_url,omitempty"`
	ImageURL                string                      `gorm:"size:500;column:image_url" json:"image_url,omitempty"`
	Description             string                      `gorm:"type:text" json:"description,omitempty"`
	CompletionRate          *int                        `gorm:"column:completion_rate" json:"completion_rate,omitempty"`
	StudentSize             *int                        `gorm:"column:student_size" json:"student_size,omitempty"`
	AverageCostOfAttendance *int                        `gorm:"column:average_cost_of_attendance" json:"average_cost_of_attendance,omitempty"`
	MedianEarnings          *int                        `gorm:"column:median_earnings" json:"median_earnings,omitempty"`
	SATScoreAverage         *int                        `gorm:"column:sat_score_average" json:"sat_score_average,omitempty"`
	ACTScoreAverage         *int                        `gorm:"column:act_score_average" json:"act_score_average,omitempty"`
	CreatedAt               time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (University) TableName() string { return "university" }
