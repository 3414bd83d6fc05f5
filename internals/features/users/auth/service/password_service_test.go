package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	userModel "vatplatform_backend/internals/features/users/user/model"
)

func TestCheckResetToken(t *testing.T) {
	now := time.Now()
	future := now.Add(30 * time.Minute)
	past := now.Add(-1 * time.Minute)

	token := "tok-valid"
	user := &userModel.UserModel{
		ResetPasswordToken:   &token,
		ResetPasswordExpires: &future,
	}
	assert.NoError(t, CheckResetToken(user, "tok-valid", now))

	// Wrong token and expired token are indistinguishable to a caller.
	wrongErr := CheckResetToken(user, "tok-other", now)
	user.ResetPasswordExpires = &past
	expiredErr := CheckResetToken(user, "tok-valid", now)

	assert.ErrorIs(t, wrongErr, ErrResetTokenInvalid)
	assert.ErrorIs(t, expiredErr, ErrResetTokenInvalid)
	assert.Equal(t, wrongErr.Error(), expiredErr.Error())
}

func TestCheckResetTokenMissingExpiry(t *testing.T) {
	token := "tok"
	user := &userModel.UserModel{ResetPasswordToken: &token}
	assert.ErrorIs(t, CheckResetToken(user, "tok", time.Now()), ErrResetTokenInvalid)
}
