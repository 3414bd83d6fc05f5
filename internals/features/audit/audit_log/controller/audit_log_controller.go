package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vatplatform_backend/internals/constants"
	auditModel "vatplatform_backend/internals/features/audit/audit_log/model"
	helper "vatplatform_backend/internals/helpers"
)

type AuditLogController struct {
	DB *gorm.DB
}

func NewAuditLogController(db *gorm.DB) *AuditLogController {
	return &AuditLogController{DB: db}
}

// auditLogRow joins the summary columns of the related user, document
// and report onto each log entry.
type auditLogRow struct {
	auditModel.AuditLogModel
	UserName     *string `json:"user_name,omitempty" gorm:"column:user_name"`
	UserEmail    *string `json:"user_email,omitempty" gorm:"column:user_email"`
	DocumentType *string `json:"document_type,omitempty" gorm:"column:document_type"`
	DocumentTag  *string `json:"document_tag,omitempty" gorm:"column:document_tag"`
	ReportStatus *string `json:"report_status,omitempty" gorm:"column:report_status"`
	ReportFormat *string `json:"report_format,omitempty" gorm:"column:report_format"`
}

// List returns every row for SuperAdmin and ComplianceOfficer, and only
// the actor's own rows for everyone else.
func (ctl *AuditLogController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.Table("audit_logs").
		Select(`audit_logs.*,
			users.name AS user_name, users.email AS user_email,
			documents.file_type AS document_type, documents.tag AS document_tag,
			reports.status AS report_status, reports.format AS report_format`).
		Joins("LEFT JOIN users ON users.id = audit_logs.user_id").
		Joins("LEFT JOIN documents ON documents.id = audit_logs.document_id").
		Joins("LEFT JOIN reports ON reports.id = audit_logs.report_id")

	if !constants.CanViewAllAuditLogs(role) {
		q = q.Where("audit_logs.user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logrus.WithError(err).Error("audit-logs: count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	var rows []auditLogRow
	if err := q.Order("audit_logs.created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		logrus.WithError(err).Error("audit-logs: query failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
