package service

import (
	"strings"

	"github.com/pquerna/otp/totp"
)

const totpIssuer = "VATPlatform"

// GenerateTOTPSecret creates a new shared secret for the user and
// returns (secret, provisioning URL) for authenticator apps.
func GenerateTOTPSecret(email string) (string, string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: email,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// ValidateTOTPCode checks a one-time code against the stored secret.
// Formatting characters users tend to paste are stripped first.
func ValidateTOTPCode(secret, code string) bool {
	code = strings.ReplaceAll(code, " ", "")
	code = strings.ReplaceAll(code, "-", "")
	return totp.Validate(code, secret)
}
