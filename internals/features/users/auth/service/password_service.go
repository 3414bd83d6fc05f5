package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	authDTO "vatplatform_backend/internals/features/users/auth/dto"
	authHelper "vatplatform_backend/internals/features/users/auth/helper"
	userModel "vatplatform_backend/internals/features/users/user/model"
	helper "vatplatform_backend/internals/helpers"
)

const resetTokenTTL = 1 * time.Hour

/* ==========================
   FORGOT PASSWORD
========================== */

// ForgotPassword persists a single-use reset token with a 1h expiry and
// dispatches it by mail. The mailer is injected by the controller.
func ForgotPassword(db *gorm.DB, mailer *EmailService, c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email is required")
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		logrus.WithError(err).Error("forgot-password: lookup failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	resetToken := uuid.NewString()
	expires := time.Now().Add(resetTokenTTL)
	if err := db.Model(&user).Updates(map[string]interface{}{
		"reset_password_token":   resetToken,
		"reset_password_expires": expires,
	}).Error; err != nil {
		logrus.WithError(err).Error("forgot-password: token persist failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := mailer.SendPasswordReset(user.Email, resetToken); err != nil {
		logrus.WithError(err).Error("forgot-password: mail dispatch failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonOK(c, "Password reset email sent", nil)
}

/* ==========================
   RESET PASSWORD
========================== */

// ErrResetTokenInvalid is returned for expired AND unknown tokens; the
// two cases are indistinguishable to the caller.
var ErrResetTokenInvalid = errors.New("Invalid or expired token")

// CheckResetToken validates a reset token against the stored one.
func CheckResetToken(user *userModel.UserModel, token string, now time.Time) error {
	if user.ResetPasswordToken == nil || *user.ResetPasswordToken != token {
		return ErrResetTokenInvalid
	}
	if user.ResetPasswordExpires == nil || !user.ResetPasswordExpires.After(now) {
		return ErrResetTokenInvalid
	}
	return nil
}

// ResetPassword replaces the hash and invalidates the token.
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.Token == "" || req.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token and new password are required")
	}
	if err := authHelper.ValidateNewPassword(req.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	err := db.Where("reset_password_token = ?", req.Token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, ErrResetTokenInvalid.Error())
		}
		logrus.WithError(err).Error("reset-password: lookup failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	if err := CheckResetToken(&user, req.Token, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":               hash,
		"reset_password_token":   nil,
		"reset_password_expires": nil,
	}).Error; err != nil {
		logrus.WithError(err).Error("reset-password: update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}
