package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vatplatform_backend/internals/configs"
	"vatplatform_backend/internals/constants"
	authHelper "vatplatform_backend/internals/features/users/auth/helper"
	userDTO "vatplatform_backend/internals/features/users/user/dto"
	userModel "vatplatform_backend/internals/features/users/user/model"
	helper "vatplatform_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// Create adds a managed user under the authenticated creator. The role
// hierarchy is enforced from the data table; a creator outside it was
// already rejected by the route guard.
func (ctl *UserController) Create(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var creator userModel.UserModel
	if err := ctl.DB.First(&creator, "id = ?", creatorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Creator not found")
	}

	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := authHelper.ValidateSignupInput(req.Name, req.Email, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	role := req.Role
	if role == "" {
		role = constants.RoleUser
	}
	if !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}
	if !constants.CanGrantRole(creator.Role, role) {
		if creator.Role == constants.RoleSuperAdmin {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role for SuperAdmin to create")
		}
		return helper.JsonError(c, fiber.StatusForbidden, creator.Role+" cannot create "+role+" users")
	}

	displayPicture, companyLogo, err := userDTO.ProfileFilePaths(c, configs.UploadDir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store profile files")
	}

	user := req.ToModel()
	user.Role = role
	user.CreatedBy = &creator.ID
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

	if err := ctl.DB.Create(user).Error; err != nil {
		if isDuplicateEmail(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		logrus.WithError(err).Error("users: create failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", user)
}

// List is scoped by role: SuperAdmin sees everyone, CorporateUser and
// Consultancy only the users they created.
func (ctl *UserController) List(c *fiber.Ctx) error {
	actorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&userModel.UserModel{}).Select(userModel.PublicColumns)
	switch {
	case constants.CanSeeAllRecords(role):
		// unscoped
	case role == constants.RoleCorporateUser || role == constants.RoleConsultancy:
		q = q.Where("created_by = ?", actorID)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Insufficient permissions")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		logrus.WithError(err).Error("users: count failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		logrus.WithError(err).Error("users: query failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonList(c, "", users, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GetByID allows SuperAdmin, the record's creator, and the user itself.
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	actorID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.Select(userModel.PublicColumns).
		First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var createdBy *string
	if user.CreatedBy != nil {
		s := user.CreatedBy.String()
		createdBy = &s
	}
	if !constants.OwnsOrCreated(role, actorID.String(), user.ID.String(), createdBy) {
		return helper.JsonError(c, fiber.StatusForbidden, "Insufficient permissions")
	}

	return helper.JsonOK(c, "", user)
}

// Update is restricted to SuperAdmin and Consultancy by the route guard;
// a role change re-checks the hierarchy table so a Consultancy cannot
// promote a managed user to SuperAdmin.
func (ctl *UserController) Update(c *fiber.Ctx) error {
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if req.Role != nil && *req.Role != "" && *req.Role != user.Role {
		if !constants.IsValidRole(*req.Role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
		}
		if !constants.CanGrantRole(role, *req.Role) {
			return helper.JsonError(c, fiber.StatusForbidden, role+" cannot assign the "+*req.Role+" role")
		}
	}

	displayPicture, companyLogo, err := userDTO.ProfileFilePaths(c, configs.UploadDir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store profile files")
	}

	changes := req.Changes()
	if displayPicture != "" {
		changes["display_picture"] = displayPicture
	}
	if companyLogo != "" {
		changes["company_logo"] = companyLogo
	}
	if len(changes) == 0 {
		return helper.JsonOK(c, "", user)
	}

	if err := ctl.DB.Model(&user).Updates(changes).Error; err != nil {
		if isDuplicateEmail(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		logrus.WithError(err).Error("users: update failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	if err := ctl.DB.Select(userModel.PublicColumns).
		First(&user, "id = ?", user.ID).Error; err != nil {
		logrus.WithError(err).Error("users: reload failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonUpdated(c, "User updated", user)
}

// Delete hard-deletes a user. SuperAdmin only; the single hard delete in
// the system.
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := ctl.DB.Delete(&user).Error; err != nil {
		logrus.WithError(err).Error("users: delete failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User deleted", nil)
}

func isDuplicateEmail(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
