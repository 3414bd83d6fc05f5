package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vatplatform_backend/internals/configs"
	"vatplatform_backend/internals/constants"
)

func setTestSecret(t *testing.T) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestSessionTokenRoundtrip(t *testing.T) {
	setTestSecret(t)

	userID := uuid.New()
	token, err := CreateSessionToken(userID, constants.RoleCorporateUser)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, constants.RoleCorporateUser, claims["role"])
	assert.NotContains(t, claims, "purpose")

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}

func TestPreAuthTokenCarriesPurpose(t *testing.T) {
	setTestSecret(t)

	token, err := CreatePreAuthToken(uuid.New(), constants.RoleUser)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "2fa", claims["purpose"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(5*time.Minute).Unix(), int64(exp), 5)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	setTestSecret(t)

	token, err := CreateSessionToken(uuid.New(), constants.RoleUser)
	require.NoError(t, err)

	configs.JWTSecret = "a-different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)

	configs.JWTSecret = "test-secret"
	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestSignTokenRequiresSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = old })

	_, err := CreateSessionToken(uuid.New(), constants.RoleUser)
	assert.Error(t, err)
}
