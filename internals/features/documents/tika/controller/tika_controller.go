package controller

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"vatplatform_backend/internals/configs"
	"vatplatform_backend/internals/constants"
	docService "vatplatform_backend/internals/features/documents/document/service"
	helper "vatplatform_backend/internals/helpers"
)

// TikaController proxies raw text extraction straight to the external
// server, without persisting a Document.
type TikaController struct {
	Extractor *docService.Extractor
}

func NewTikaController(extractor *docService.Extractor) *TikaController {
	return &TikaController{Extractor: extractor}
}

// ExtractText accepts a multipart "document" file, forwards it to the
// extraction server and returns the plain text. The temp file is
// removed on every path.
func (ctl *TikaController) ExtractText(c *fiber.Ctx) error {
	fh, err := c.FormFile("document")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded or invalid file type")
	}

	tmpPath := filepath.Join(configs.UploadDir, fh.Filename)
	if err := c.SaveFile(fh, tmpPath); err != nil {
		logrus.WithError(err).Error("tika: temp save failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process file")
	}
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			logrus.WithError(rmErr).Warn("tika: temp cleanup failed")
		}
	}()

	raw, err := os.ReadFile(tmpPath)
	if err != nil {
		logrus.WithError(err).Error("tika: temp read failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process file")
	}

	text, err := ctl.Extractor.ExtractTextFromBytes(c.UserContext(), raw, constants.DetectContentType(fh.Filename))
	if err != nil {
		logrus.WithError(err).Error("tika: extraction failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process file with extraction server")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(text)
}
