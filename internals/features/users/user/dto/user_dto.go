package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	uModel "vatplatform_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest is shared by signup and admin create. The endpoints
// are multipart because displayPicture / companyLogo ride along as
// files; scalar fields come from the form values.
type CreateUserRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	Role           string `json:"role" form:"role"`
	Phone          string `json:"phone" form:"phone"`
	Subscription   string `json:"subscription" form:"subscription"`
	VatTin         string `json:"vat_tin" form:"vat_tin"`
	CompanyAddress string `json:"company_address" form:"company_address"`
	Language       string `json:"language" form:"language"`
}

func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
	r.Phone = strings.TrimSpace(r.Phone)
	r.VatTin = strings.TrimSpace(r.VatTin)
}

// ToModel builds the model; the password is hashed by the caller.
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		Name:           r.Name,
		Email:          r.Email,
		Password:       r.Password,
		Role:           r.Role,
		Phone:          r.Phone,
		Subscription:   r.Subscription,
		VatTin:         r.VatTin,
		CompanyAddress: r.CompanyAddress,
		Language:       r.Language,
	}
}

// UpdateUserRequest is a partial update; pointers distinguish omitted
// from empty.
type UpdateUserRequest struct {
	Name           *string `json:"name" form:"name"`
	Email          *string `json:"email" form:"email"`
	Role           *string `json:"role" form:"role"`
	Phone          *string `json:"phone" form:"phone"`
	Subscription   *string `json:"subscription" form:"subscription"`
	VatTin         *string `json:"vat_tin" form:"vat_tin"`
	CompanyAddress *string `json:"company_address" form:"company_address"`
	Language       *string `json:"language" form:"language"`
	Status         *string `json:"status" form:"status"`
}

func (r *UpdateUserRequest) Normalize() {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	r.Name = trim(r.Name)
	r.Role = trim(r.Role)
	r.Phone = trim(r.Phone)
	r.VatTin = trim(r.VatTin)
	r.Status = trim(r.Status)
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
}

// Changes builds the gorm update map from the fields that were sent.
func (r *UpdateUserRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	set := func(col string, p *string) {
		if p != nil && *p != "" {
			changes[col] = *p
		}
	}
	set("name", r.Name)
	set("email", r.Email)
	set("role", r.Role)
	set("phone", r.Phone)
	set("subscription", r.Subscription)
	set("vat_tin", r.VatTin)
	set("company_address", r.CompanyAddress)
	set("language", r.Language)
	set("status", r.Status)
	return changes
}

/* =======================================================
   Multipart helpers
   ======================================================= */

// ProfileFilePaths extracts the optional displayPicture / companyLogo
// uploads, saves them under dir, and returns their public paths.
func ProfileFilePaths(c *fiber.Ctx, dir string) (displayPicture, companyLogo string, err error) {
	if fh, ferr := c.FormFile("displayPicture"); ferr == nil && fh != nil {
		displayPicture = "/" + dir + "/" + fh.Filename
		if err = c.SaveFile(fh, dir+"/"+fh.Filename); err != nil {
			return "", "", err
		}
	}
	if fh, ferr := c.FormFile("companyLogo"); ferr == nil && fh != nil {
		companyLogo = "/" + dir + "/" + fh.Filename
		if err = c.SaveFile(fh, dir+"/"+fh.Filename); err != nil {
			return "", "", err
		}
	}
	return displayPicture, companyLogo, nil
}
