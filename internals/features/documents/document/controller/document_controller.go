package controller

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vatplatform_backend/internals/configs"
	"vatplatform_backend/internals/constants"
	auditService "vatplatform_backend/internals/features/audit/audit_log/service"
	docModel "vatplatform_backend/internals/features/documents/document/model"
	docService "vatplatform_backend/internals/features/documents/document/service"
	helper "vatplatform_backend/internals/helpers"
)

type DocumentController struct {
	DB        *gorm.DB
	Extractor *docService.Extractor
}

func NewDocumentController(db *gorm.DB, extractor *docService.Extractor) *DocumentController {
	return &DocumentController{DB: db, Extractor: extractor}
}

// Upload stores the raw file under the upload dir, runs the extraction
// pipeline and persists the metadata verbatim. The owning user is fixed
// here and never changes.
func (ctl *DocumentController) Upload(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	fileType := c.FormValue("fileType")
	tag := c.FormValue("tag")
	if !constants.IsValidFileType(fileType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid or missing fileType")
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	// Predictable path derived from the original filename.
	storedPath := filepath.Join(configs.UploadDir, fh.Filename)
	if err := c.SaveFile(fh, storedPath); err != nil {
		logrus.WithError(err).Error("upload: save failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	meta, err := docService.ProcessDocument(c.UserContext(), ctl.Extractor, storedPath)
	if err != nil {
		logrus.WithError(err).Error("upload: extraction failed")
		// Uploaded file is removed on the error path.
		if rmErr := os.Remove(storedPath); rmErr != nil {
			logrus.WithError(rmErr).Warn("upload: cleanup failed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process document")
	}

	metaBlob, err := json.Marshal(meta)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode metadata")
	}

	document := docModel.DocumentModel{
		UserID:   userID,
		FilePath: "/" + configs.UploadDir + "/" + fh.Filename,
		FileType: fileType,
		Tag:      tag,
		Metadata: metaBlob,
	}
	if err := ctl.DB.Create(&document).Error; err != nil {
		logrus.WithError(err).Error("upload: insert failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create document")
	}

	auditService.Record(ctl.DB, &userID, &document.ID, nil, "upload_document", map[string]interface{}{
		"fileType": fileType,
		"tag":      tag,
	})

	return helper.JsonCreated(c, "Document uploaded", document)
}

// List returns the actor's own documents.
func (ctl *DocumentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&docModel.DocumentModel{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		logrus.WithError(err).Error("documents: count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	var documents []docModel.DocumentModel
	if err := ctl.DB.Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&documents).Error; err != nil {
		logrus.WithError(err).Error("documents: query failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonList(c, "", documents, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
