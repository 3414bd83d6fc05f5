package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "vatplatform_backend/internals/features/users/auth/controller"
	authService "vatplatform_backend/internals/features/users/auth/service"
	rateLimiter "vatplatform_backend/internals/middlewares"
	authMiddleware "vatplatform_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/v1/auth. Signup stays open so the first
// SuperAdmin can be created, but an authenticated caller goes through
// the creation hierarchy. verify-2fa accepts the short-lived pre-auth
// token issued by login.
func AuthRoutes(app *fiber.App, db *gorm.DB, mailer *authService.EmailService) {
	ctl := authController.NewAuthController(db, mailer)

	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", authMiddleware.OptionalAuthMiddleware(), ctl.Signup)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	auth.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), ctl.ForgotPassword)
	auth.Post("/reset-password", ctl.ResetPassword)

	auth.Post("/enable-2fa", authMiddleware.AuthMiddleware(), ctl.Enable2FA)
	auth.Post("/verify-2fa", authMiddleware.PreAuthMiddleware(), ctl.Verify2FA)
}
