package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vatplatform_backend/internals/configs"
	"vatplatform_backend/internals/constants"
	authDTO "vatplatform_backend/internals/features/users/auth/dto"
	authHelper "vatplatform_backend/internals/features/users/auth/helper"
	onboardingModel "vatplatform_backend/internals/features/users/onboarding/model"
	userDTO "vatplatform_backend/internals/features/users/user/dto"
	userModel "vatplatform_backend/internals/features/users/user/model"
	helper "vatplatform_backend/internals/helpers"
)

/* ==========================
   SIGNUP
========================== */

// Signup creates a User plus its Onboarding row and issues a session
// token. The root creation path is unguarded; when a bearer token is
// presented the creator is bound by the role hierarchy table.
func Signup(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := authHelper.ValidateSignupInput(req.Name, req.Email, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Role != "" && !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	user := req.ToModel()

	// Hierarchy check only applies when a creator is authenticated.
	if creatorID, ok := c.Locals("user_id").(string); ok && creatorID != "" {
		var creator userModel.UserModel
		if err := db.First(&creator, "id = ?", creatorID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Creator not found")
		}
		role := req.Role
		if role == "" {
			role = constants.RoleUser
		}
		if !constants.CanManageUsers(creator.Role) {
			return helper.JsonError(c, fiber.StatusForbidden, "Insufficient permissions")
		}
		if !constants.CanGrantRole(creator.Role, role) {
			return helper.JsonError(c, fiber.StatusForbidden, "Creator role cannot grant "+role)
		}
		user.CreatedBy = &creator.ID
	}

	displayPicture, companyLogo, err := userDTO.ProfileFilePaths(c, configs.UploadDir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store profile files")
	}
	user.DisplayPicture = displayPicture
	user.CompanyLogo = companyLogo

	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	user.Password = hash

	if err := db.Create(user).Error; err != nil {
		if isDuplicateEmail(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		logrus.WithError(err).Error("signup: create user failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	if err := db.Create(&onboardingModel.OnboardingModel{UserID: user.ID}).Error; err != nil {
		logrus.WithError(err).Warn("signup: onboarding record not created")
	}

	token, err := CreateSessionToken(user.ID, user.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issuance failed")
	}

	return helper.JsonCreated(c, "Registration successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

/* ==========================
   LOGIN
========================== */

// Login verifies credentials. Unknown email and wrong password return
// the identical 401; account existence is never revealed. The email is
// normalized the same way signup stores it, so casing never locks a
// user out.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := authHelper.ValidateLoginInput(req.Email, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		logrus.WithError(err).Error("login: user lookup failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	now := time.Now()
	if err := db.Model(&user).Update("last_login", now).Error; err != nil {
		logrus.WithError(err).Warn("login: last_login update failed")
	}
	user.LastLogin = &now

	// With 2FA enabled the full session token is withheld until the
	// one-time code checks out.
	if user.TwoFactorEnabled {
		preAuth, err := CreatePreAuthToken(user.ID, user.Role)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Token issuance failed")
		}
		return helper.JsonOK(c, "Two-factor verification required", fiber.Map{
			"requires_2fa": true,
			"token":        preAuth,
		})
	}

	token, err := CreateSessionToken(user.ID, user.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Token issuance failed")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func isDuplicateEmail(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
