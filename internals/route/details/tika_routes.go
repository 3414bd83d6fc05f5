package details

import (
	"github.com/gofiber/fiber/v2"

	docService "vatplatform_backend/internals/features/documents/document/service"
	tikaController "vatplatform_backend/internals/features/documents/tika/controller"
	authMiddleware "vatplatform_backend/internals/middlewares/auth"
)

// TikaRoutes mounts the raw extraction proxy.
func TikaRoutes(app *fiber.App, extractor *docService.Extractor) {
	ctl := tikaController.NewTikaController(extractor)

	tika := app.Group("/api/v1/tika", authMiddleware.AuthMiddleware())
	tika.Put("/extract-text", ctl.ExtractText)
}
