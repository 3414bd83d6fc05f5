package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentModel maps the documents table. Metadata holds whatever the
// extraction pipeline produced, stored verbatim as JSONB. The owning
// user is fixed at creation.
type DocumentModel struct {
	ID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	FilePath string         `gorm:"size:255;not null" json:"file_path"`
	FileType string         `gorm:"type:varchar(20);not null" json:"file_type"`
	Tag      string         `gorm:"size:100" json:"tag,omitempty"`
	Version  int            `gorm:"not null;default:1" json:"version"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (DocumentModel) TableName() string {
	return "documents"
}
