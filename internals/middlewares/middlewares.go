package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the app-wide chain. Order matters:
// recovery first so every later panic is caught.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
