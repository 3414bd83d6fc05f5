package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	JWTSecret         string
	MidtransServerKey string
	TikaServerURL     string
	FrontendURL       string
	UploadDir         string
	ReportDir         string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
)

// LoadEnv reads .env (when present) and caches the values every request
// path depends on. Missing secrets are logged loudly but do not abort
// startup; the handlers that need them fail with a 500 instead.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			logrus.Warn("no .env file found, using system environment")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	TikaServerURL = GetEnv("TIKA_SERVER_URL", "http://localhost:9998")
	FrontendURL = GetEnv("FRONTEND_URL", "http://localhost:5173")
	UploadDir = GetEnv("UPLOAD_DIR", "uploads")
	ReportDir = GetEnv("REPORT_DIR", "reports")

	SMTPHost = GetEnv("SMTP_HOST", "smtp.gmail.com")
	SMTPPort = GetEnv("SMTP_PORT", "465")
	SMTPUsername = GetEnv("EMAIL_USER")
	SMTPPassword = GetEnv("EMAIL_PASS")
	SMTPFrom = GetEnv("EMAIL_FROM", SMTPUsername)

	if JWTSecret == "" {
		logrus.Error("JWT_SECRET is not set")
	}
	if MidtransServerKey == "" {
		logrus.Warn("MIDTRANS_SERVER_KEY is not set, payment verification will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
