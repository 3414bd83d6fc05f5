package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	auditModel "vatplatform_backend/internals/features/audit/audit_log/model"
)

// Record appends an audit row. Failures are logged, never surfaced: a
// mutation must not roll back because its trail could not be written.
func Record(db *gorm.DB, userID, documentID, reportID *uuid.UUID, action string, details map[string]interface{}) {
	row := auditModel.AuditLogModel{
		UserID:     userID,
		DocumentID: documentID,
		ReportID:   reportID,
		Action:     action,
	}
	if details != nil {
		blob, err := json.Marshal(details)
		if err != nil {
			logrus.WithError(err).WithField("action", action).Warn("audit: details marshal failed")
		} else {
			row.Details = blob
		}
	}
	if err := db.Create(&row).Error; err != nil {
		logrus.WithError(err).WithField("action", action).Error("audit: append failed")
	}
}

// RecordTx is Record inside an open transaction; here a failure DOES
// abort, so the trail and the mutation commit or roll back together.
func RecordTx(tx *gorm.DB, userID, documentID, reportID *uuid.UUID, action string, details map[string]interface{}) error {
	row := auditModel.AuditLogModel{
		UserID:     userID,
		DocumentID: documentID,
		ReportID:   reportID,
		Action:     action,
	}
	if details != nil {
		blob, err := json.Marshal(details)
		if err != nil {
			return err
		}
		row.Details = blob
	}
	return tx.Create(&row).Error
}
