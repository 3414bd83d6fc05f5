package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel maps the audit_logs table. Rows are append-only: the
// codebase exposes no update or delete path for them.
type AuditLogModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	DocumentID *uuid.UUID     `gorm:"type:uuid" json:"document_id,omitempty"`
	ReportID   *uuid.UUID     `gorm:"type:uuid" json:"report_id,omitempty"`
	Action     string         `gorm:"size:100;not null" json:"action"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
