package service

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTOTPSecret(t *testing.T) {
	secret, url, err := GenerateTOTPSecret("user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://totp/")
	assert.Contains(t, url, "VATPlatform")
	assert.Contains(t, url, "user@example.com")

	other, _, err := GenerateTOTPSecret("user@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestValidateTOTPCode(t *testing.T) {
	secret, _, err := GenerateTOTPSecret("user@example.com")
	require.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, ValidateTOTPCode(secret, code))
	assert.True(t, ValidateTOTPCode(secret, code[:3]+" "+code[3:]))
	assert.False(t, ValidateTOTPCode(secret, "000000"))
	assert.False(t, ValidateTOTPCode(secret, ""))
}
