package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeReport       = "report"
	TypeSubscription = "subscription"
	TypeCreditTopup  = "credit_topup"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CreditRate: one credit per 10 currency units on top-up.
const CreditRate = 10

// PaymentModel maps the payments table. ProviderRef is the external
// payment/order id checked against the payment provider.
type PaymentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type        string    `gorm:"type:varchar(15);not null" json:"type"`
	Status      string    `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	ProviderRef string    `gorm:"size:100" json:"provider_ref,omitempty"`
	Credits     int       `gorm:"not null;default:0" json:"credits"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func IsValidType(t string) bool {
	switch t {
	case TypeReport, TypeSubscription, TypeCreditTopup:
		return true
	}
	return false
}

// CreditsForTopup converts a top-up amount into credits: floor(amount/10).
// Other payment types never earn credits.
func CreditsForTopup(paymentType string, amount float64) int {
	if paymentType != TypeCreditTopup {
		return 0
	}
	if amount < 0 {
		return 0
	}
	return int(amount / CreditRate)
}
