package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	auditService "vatplatform_backend/internals/features/audit/audit_log/service"
	docModel "vatplatform_backend/internals/features/documents/document/model"
	reportDTO "vatplatform_backend/internals/features/reports/report/dto"
	reportModel "vatplatform_backend/internals/features/reports/report/model"
	reportService "vatplatform_backend/internals/features/reports/report/service"
	helper "vatplatform_backend/internals/helpers"
)

type ReportController struct {
	DB       *gorm.DB
	Renderer *reportService.Renderer
}

func NewReportController(db *gorm.DB, renderer *reportService.Renderer) *ReportController {
	return &ReportController{DB: db, Renderer: renderer}
}

// findOwned loads a report and hides cross-tenant rows behind the same
// 404 as missing ones.
func (ctl *ReportController) findOwned(id string, userID uuid.UUID) (*reportModel.ReportModel, error) {
	var report reportModel.ReportModel
	if err := ctl.DB.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Report not found or unauthorized")
		}
		logrus.WithError(err).Error("reports: lookup failed")
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	if report.UserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Report not found or unauthorized")
	}
	return &report, nil
}

// Generate renders a report for one of the actor's documents. New
// reports start as draft with the watermark set.
func (ctl *ReportController) Generate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req reportDTO.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !reportModel.IsValidFormat(req.Format) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid format")
	}

	var document docModel.DocumentModel
	if err := ctl.DB.First(&document, "id = ?", req.DocumentID).Error; err != nil || document.UserID != userID {
		return helper.JsonError(c, fiber.StatusNotFound, "Document not found or unauthorized")
	}

	data, err := ctl.Renderer.Render(&document, req.Format)
	if err != nil {
		logrus.WithError(err).Error("reports: render failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate report")
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode report data")
	}

	now := time.Now()
	report := reportModel.ReportModel{
		UserID:      userID,
		DocumentID:  document.ID,
		Status:      reportModel.StatusDraft,
		Format:      req.Format,
		Data:        blob,
		Watermark:   true,
		GeneratedAt: &now,
	}
	if err := ctl.DB.Create(&report).Error; err != nil {
		logrus.WithError(err).Error("reports: insert failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create report")
	}

	auditService.Record(ctl.DB, &userID, nil, &report.ID, "generate_report", map[string]interface{}{
		"format": req.Format,
	})

	return helper.JsonCreated(c, "Report generated", report)
}

// Preview returns the report row including its data blob.
func (ctl *ReportController) Preview(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	report, err := ctl.findOwned(c.Params("id"), userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", report)
}

// Edit replaces the data blob and audits the before/after pair.
func (ctl *ReportController) Edit(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	report, err := ctl.findOwned(c.Params("id"), userID)
	if err != nil {
		return err
	}

	var req reportDTO.EditReportRequest
	if err := c.BodyParser(&req); err != nil || len(req.Data) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	oldData := json.RawMessage(report.Data)
	if err := ctl.DB.Model(report).Update("data", []byte(req.Data)).Error; err != nil {
		logrus.WithError(err).Error("reports: update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update report")
	}
	report.Data = []byte(req.Data)

	auditService.Record(ctl.DB, &userID, nil, &report.ID, "edit_report", map[string]interface{}{
		"oldData": oldData,
		"newData": req.Data,
	})

	return helper.JsonUpdated(c, "Report updated", report)
}

// Download serves the rendered artifact. Gated on status=completed for
// every role, the owner included.
func (ctl *ReportController) Download(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	report, err := ctl.findOwned(c.Params("id"), userID)
	if err != nil {
		return err
	}
	if err := report.CheckDownloadable(); err != nil {
		return err
	}

	var data reportService.ReportData
	if err := json.Unmarshal(report.Data, &data); err != nil || data.FilePath == "" {
		logrus.WithError(err).Error("reports: data blob unreadable")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Report artifact missing")
	}

	return c.Download(strings.TrimPrefix(data.FilePath, "/"))
}

// reportRow carries the joined document summary for report history.
type reportRow struct {
	reportModel.ReportModel
	DocumentType *string `json:"document_type,omitempty" gorm:"column:document_type"`
	DocumentTag  *string `json:"document_tag,omitempty" gorm:"column:document_tag"`
}

// History lists the actor's reports with the source document summary.
func (ctl *ReportController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Table("reports").
		Select("reports.*, documents.file_type AS document_type, documents.tag AS document_tag").
		Joins("LEFT JOIN documents ON documents.id = reports.document_id").
		Where("reports.user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logrus.WithError(err).Error("reports: count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	var rows []reportRow
	if err := q.Order("reports.created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		logrus.WithError(err).Error("reports: query failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
