package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"vatplatform_backend/internals/configs"
	helper "vatplatform_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer JWT and stores user_id and userRole
// in Locals for every handler downstream. Tokens carrying the pre-auth
// purpose (issued to 2FA users between password and code) are rejected
// here; only the verify-2fa endpoint accepts them.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			logrus.Error("JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			if strings.Contains(err.Error(), "expired") {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if purpose, _ := claims["purpose"].(string); purpose == "2fa" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - 2FA verification required")
		}

		userID, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}

		helper.SetRawAccessToken(c, tokenString)
		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		return c.Next()
	}
}

// OptionalAuthMiddleware fills Locals when a valid token is presented but
// lets anonymous requests through. Used by signup, where the root
// creation path is unguarded and an authenticated creator is bound by
// the role hierarchy.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" || configs.JWTSecret == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return c.Next()
		}

		if purpose, _ := claims["purpose"].(string); purpose == "2fa" {
			return c.Next()
		}
		if userID, _ := claims["id"].(string); userID != "" {
			c.Locals("user_id", userID)
		}
		if role, _ := claims["role"].(string); role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	}
}

// PreAuthMiddleware accepts both full session tokens and short-lived
// pre-auth tokens. Only verify-2fa mounts it.
func PreAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}
		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		userID, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token claims")
		}

		c.Locals("user_id", userID)
		c.Locals("userRole", role)
		return c.Next()
	}
}
