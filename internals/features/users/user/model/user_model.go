package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// UserModel maps the users table. Secret columns (password hash, reset
// token, 2FA secret) never serialize: json:"-" plus explicit omission on
// list queries.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	Role     string    `gorm:"type:varchar(20);not null;default:'User'" json:"role" validate:"omitempty,oneof=SuperAdmin CorporateUser User Consultancy ComplianceOfficer"`
	Phone    string    `gorm:"size:20" json:"phone,omitempty" validate:"omitempty,e164"`
	Status   string    `gorm:"type:varchar(10);not null;default:'active'" json:"status" validate:"omitempty,oneof=active inactive blocked"`

	Subscription   string `gorm:"type:varchar(12);not null;default:'free'" json:"subscription" validate:"omitempty,oneof=free standard premium enterprise"`
	DisplayPicture string `gorm:"size:255" json:"display_picture,omitempty"`
	CompanyLogo    string `gorm:"size:255" json:"company_logo,omitempty"`
	VatTin         string `gorm:"size:15" json:"vat_tin,omitempty" validate:"omitempty,len=15,numeric"`
	CompanyAddress string `gorm:"type:text" json:"company_address,omitempty"`
	Language       string `gorm:"type:varchar(10);not null;default:'English'" json:"language" validate:"omitempty,oneof=English Arabic Hindi"`

	TwoFactorSecret  string `gorm:"size:255" json:"-"`
	TwoFactorEnabled bool   `gorm:"not null;default:false" json:"two_factor_enabled"`

	LastLogin            *time.Time `json:"last_login,omitempty"`
	ResetPasswordToken   *string    `gorm:"size:255" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// PublicColumns is the projection for list queries; everything except the
// secret columns.
var PublicColumns = []string{
	"id", "name", "email", "role", "phone", "status", "subscription",
	"display_picture", "company_logo", "vat_tin", "company_address",
	"language", "two_factor_enabled", "last_login", "created_by",
	"created_at", "updated_at",
}

func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "User"
	}
	if u.Status == "" {
		u.Status = "active"
	}
	if u.Subscription == "" {
		u.Subscription = "free"
	}
	if u.Language == "" {
		u.Language = "English"
	}
}

func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msg := ""
	for _, fieldErr := range validationErrs {
		if msg != "" {
			msg += "; "
		}
		switch fieldErr.Tag() {
		case "required":
			msg += fieldErr.Field() + " is required"
		case "email":
			msg += "invalid email format"
		case "min":
			msg += fieldErr.Field() + " must be at least " + fieldErr.Param() + " characters"
		case "max":
			msg += fieldErr.Field() + " must be at most " + fieldErr.Param() + " characters"
		case "len":
			msg += fieldErr.Field() + " must be exactly " + fieldErr.Param() + " characters"
		case "oneof":
			msg += fieldErr.Field() + " must be one of " + fieldErr.Param()
		default:
			msg += fieldErr.Field() + " is invalid"
		}
	}
	return errors.New(msg)
}
