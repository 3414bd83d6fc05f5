package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel maps the subscriptions table.
type SubscriptionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	Plan      string     `gorm:"type:varchar(12);not null" json:"plan"`
	Status    string     `gorm:"type:varchar(10);not null;default:'active'" json:"status"`
	StartDate time.Time  `gorm:"autoCreateTime" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
