package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *UserModel {
	return &UserModel{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "hashed-password",
		Role:     "CorporateUser",
		VatTin:   "100123456789012",
	}
}

func TestSecretsNeverSerialize(t *testing.T) {
	token := "reset-token"
	expires := time.Now().Add(time.Hour)

	u := validUser()
	u.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	u.ResetPasswordToken = &token
	u.ResetPasswordExpires = &expires

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	body := string(raw)
	assert.NotContains(t, body, "hashed-password")
	assert.NotContains(t, body, "JBSWY3DPEHPK3PXP")
	assert.NotContains(t, body, "reset-token")
	assert.Contains(t, body, "jane@example.com")
}

func TestPublicColumnsExcludeSecrets(t *testing.T) {
	for _, col := range PublicColumns {
		assert.NotEqual(t, "password", col)
		assert.NotEqual(t, "two_factor_secret", col)
		assert.NotEqual(t, "reset_password_token", col)
		assert.NotEqual(t, "reset_password_expires", col)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validUser().Validate())

	u := validUser()
	u.Email = "not-an-email"
	assert.Error(t, u.Validate())

	u = validUser()
	u.VatTin = "123"
	err := u.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "15")

	u = validUser()
	u.VatTin = "10012345678901A"
	assert.Error(t, u.Validate())

	u = validUser()
	u.Role = "Admin"
	assert.Error(t, u.Validate())
}

func TestSetDefaultValues(t *testing.T) {
	u := &UserModel{Name: "Jane Doe", Email: "jane@example.com", Password: "hashed-password"}
	require.NoError(t, u.Validate())

	assert.Equal(t, "User", u.Role)
	assert.Equal(t, "active", u.Status)
	assert.Equal(t, "free", u.Subscription)
	assert.Equal(t, "English", u.Language)
}
