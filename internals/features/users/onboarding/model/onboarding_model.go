package model

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingModel captures the business profile collected right after
// registration. One row per user, created together with the account.
type OnboardingModel struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Industry        string    `gorm:"size:100" json:"industry,omitempty"`
	Revenue         float64   `gorm:"type:decimal(15,2)" json:"revenue,omitempty"`
	FtaRegistration string    `gorm:"size:50" json:"fta_registration,omitempty"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OnboardingModel) TableName() string {
	return "onboardings"
}
