package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePaymentIssue        = "payment_issue"
	TypeReportReady         = "report_ready"
	TypeLowCredit           = "low_credit"
	TypeNewDeviceLogin      = "new_device_login"
	TypeSubscriptionRenewal = "subscription_renewal"
)

// AlertModel maps the alerts table: per-user notifications queued for a
// delivery channel.
type AlertModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Type    string    `gorm:"type:varchar(25);not null" json:"type"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Channel string    `gorm:"type:varchar(6);not null;default:'email'" json:"channel"`
	Status  string    `gorm:"type:varchar(8);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AlertModel) TableName() string {
	return "alerts"
}
