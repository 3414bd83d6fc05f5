package model

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusDraft          = "draft"
	StatusPendingPayment = "pending_payment"
	StatusCompleted      = "completed"
	StatusFailed         = "failed"
)

const (
	FormatPDF   = "PDF"
	FormatWord  = "Word"
	FormatExcel = "Excel"
)

// ReportModel maps the reports table. Watermark stays true until a
// successful payment of type "report" clears it together with moving
// status to completed.
type ReportModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	DocumentID uuid.UUID      `gorm:"type:uuid" json:"document_id"`
	Status     string         `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Format     string         `gorm:"type:varchar(10);not null;default:'PDF'" json:"format"`
	Data       datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	Watermark  bool           `gorm:"not null;default:true" json:"watermark"`

	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}

func IsValidFormat(format string) bool {
	switch format {
	case FormatPDF, FormatWord, FormatExcel:
		return true
	}
	return false
}

// CheckDownloadable gates the download endpoint: only completed reports
// may be served, for every role including the owner.
func (r *ReportModel) CheckDownloadable() error {
	if r.Status != StatusCompleted {
		return fiber.NewError(fiber.StatusForbidden, "Payment pending or report not completed")
	}
	return nil
}
