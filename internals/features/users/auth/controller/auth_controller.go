package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vatplatform_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB     *gorm.DB
	Mailer *service.EmailService
}

func NewAuthController(db *gorm.DB, mailer *service.EmailService) *AuthController {
	return &AuthController{DB: db, Mailer: mailer}
}

func (ac *AuthController) Signup(c *fiber.Ctx) error {
	return service.Signup(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return service.ForgotPassword(ac.DB, ac.Mailer, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}

func (ac *AuthController) Enable2FA(c *fiber.Ctx) error {
	return service.Enable2FA(ac.DB, c)
}

func (ac *AuthController) Verify2FA(c *fiber.Ctx) error {
	return service.Verify2FA(ac.DB, c)
}
