package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"vatplatform_backend/internals/configs"
)

const (
	sessionTokenTTL = 1 * time.Hour
	preAuthTokenTTL = 5 * time.Minute
)

// CreateSessionToken issues the bearer credential: HS256 JWT with the
// user id and role, fixed 1h expiry.
func CreateSessionToken(userID uuid.UUID, role string) (string, error) {
	return signToken(jwt.MapClaims{
		"id":   userID.String(),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(sessionTokenTTL).Unix(),
	})
}

// CreatePreAuthToken issues the short-lived token handed out after a
// correct password when 2FA is enabled. It carries purpose=2fa and is
// only accepted by verify-2fa.
func CreatePreAuthToken(userID uuid.UUID, role string) (string, error) {
	return signToken(jwt.MapClaims{
		"id":      userID.String(),
		"role":    role,
		"purpose": "2fa",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(preAuthTokenTTL).Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
