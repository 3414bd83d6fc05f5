package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignupInput(t *testing.T) {
	assert.NoError(t, ValidateSignupInput("Jane Doe", "jane@example.com", "longenough"))

	assert.Error(t, ValidateSignupInput("", "jane@example.com", "longenough"))
	assert.Error(t, ValidateSignupInput("Jane Doe", "not-an-email", "longenough"))
	assert.Error(t, ValidateSignupInput("Jane Doe", "jane@example.com", "short"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("jane@example.com", "whatever"))
	assert.Error(t, ValidateLoginInput("", "whatever"))
	assert.Error(t, ValidateLoginInput("jane@example.com", ""))
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, CheckPasswordHash(hash, "correct horse battery"))
	assert.Error(t, CheckPasswordHash(hash, "wrong password"))

	// Hashing is salted: same input, different digests.
	again, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}
