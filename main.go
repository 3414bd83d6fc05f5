package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vatplatform_backend/internals/configs"
	database "vatplatform_backend/internals/databases"
	docService "vatplatform_backend/internals/features/documents/document/service"
	paymentService "vatplatform_backend/internals/features/payments/payment/service"
	reportService "vatplatform_backend/internals/features/reports/report/service"
	authService "vatplatform_backend/internals/features/users/auth/service"
	middlewares "vatplatform_backend/internals/middlewares"
	routes "vatplatform_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		BodyLimit:               25 * 1024 * 1024,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing; the 5s deadline lines up with the DB
	// statement_timeout.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		logrus.WithFields(logrus.Fields{
			"reqid":  id,
			"method": c.Method(),
			"path":   c.OriginalURL(),
			"status": c.Response().StatusCode(),
			"dur":    time.Since(start).String(),
		}).Info("request")
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		logrus.Fatalf("upload dir: %v", err)
	}
	if err := os.MkdirAll(configs.ReportDir, 0o755); err != nil {
		logrus.Fatalf("report dir: %v", err)
	}

	deps := routes.Deps{
		Mailer:    authService.NewEmailService(),
		Verifier:  paymentService.NewMidtransVerifier(configs.MidtransServerKey),
		Extractor: docService.NewExtractor(configs.TikaServerURL),
		Renderer:  reportService.NewRenderer(configs.ReportDir),
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, database.DB, deps)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		logrus.Infof("listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
