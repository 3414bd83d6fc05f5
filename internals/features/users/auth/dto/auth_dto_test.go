package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userDTO "vatplatform_backend/internals/features/users/user/dto"
)

// A user who registered with a mixed-case email must be able to log in
// typing the identical string: both paths normalize to the same value.
func TestLoginNormalizeMatchesSignup(t *testing.T) {
	signup := userDTO.CreateUserRequest{Email: "  Jane@Example.COM "}
	signup.Normalize()

	login := LoginRequest{Email: "  Jane@Example.COM ", Password: "secret"}
	login.Normalize()

	assert.Equal(t, "jane@example.com", signup.Email)
	assert.Equal(t, signup.Email, login.Email)
	assert.Equal(t, "secret", login.Password)
}

func TestForgotAndResetNormalize(t *testing.T) {
	forgot := ForgotPasswordRequest{Email: "Jane@Example.com"}
	forgot.Normalize()
	assert.Equal(t, "jane@example.com", forgot.Email)

	reset := ResetPasswordRequest{Token: "  tok-123  ", NewPassword: "longenough"}
	reset.Normalize()
	assert.Equal(t, "tok-123", reset.Token)
}
