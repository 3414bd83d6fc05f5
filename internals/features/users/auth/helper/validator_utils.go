package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Email and password are required")
	}
	return nil
}

func ValidateSignupInput(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Name is required")
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return errors.New("Invalid email format")
	}
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

func ValidateNewPassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
