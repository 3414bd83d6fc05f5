package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authDTO "vatplatform_backend/internals/features/users/auth/dto"
	userModel "vatplatform_backend/internals/features/users/user/model"
	helper "vatplatform_backend/internals/helpers"
)

// Enable2FA generates a shared secret for the authenticated user and
// returns the otpauth provisioning URL.
func Enable2FA(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	secret, provisioningURL, err := GenerateTOTPSecret(user.Email)
	if err != nil {
		logrus.WithError(err).Error("enable-2fa: secret generation failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"two_factor_secret":  secret,
		"two_factor_enabled": true,
	}).Error; err != nil {
		logrus.WithError(err).Error("enable-2fa: persist failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonOK(c, "Two-factor authentication enabled", fiber.Map{
		"otpauth_url": provisioningURL,
	})
}

// Verify2FA checks the one-time code and, on match, issues the full
// session token. It accepts the pre-auth token from login.
func Verify2FA(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.Verify2FARequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "2FA not enabled")
	}
	if !user.TwoFactorEnabled || user.TwoFactorSecret == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "2FA not enabled")
	}

	if !ValidateTOTPCode(user.TwoFactorSecret, req.Code) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid 2FA code")
	}

	token, err := CreateSessionToken(user.ID, user.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issuance failed")
	}

	return helper.JsonOK(c, "Two-factor verification successful", fiber.Map{
		"token": token,
	})
}
