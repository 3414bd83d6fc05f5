package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	docService "vatplatform_backend/internals/features/documents/document/service"
	paymentService "vatplatform_backend/internals/features/payments/payment/service"
	reportService "vatplatform_backend/internals/features/reports/report/service"
	authService "vatplatform_backend/internals/features/users/auth/service"
	routeDetails "vatplatform_backend/internals/route/details"
)

// Deps carries the external collaborators the handlers need. They are
// constructed once in main and injected here.
type Deps struct {
	Mailer    *authService.EmailService
	Verifier  paymentService.Verifier
	Extractor *docService.Extractor
	Renderer  *reportService.Renderer
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	logrus.Info("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, deps.Mailer)

	logrus.Info("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db, deps.Verifier, deps.Extractor, deps.Renderer)

	logrus.Info("[INFO] Setting up TikaRoutes...")
	routeDetails.TikaRoutes(app, deps.Extractor)
}
