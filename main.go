package main

import (
	"os"
	"time"

	"auditpro-backend/config"
	"auditpro-backend/database"
	"auditpro-backend/middlewares"
	"auditpro-backend/routes"
	"auditpro-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func main() {
	// ---- Database
	database.Connect()
	database.AutoMigrate()

	// ---- Limits (configurable via env)
	// Fiber default BodyLimit is 4 MiB; signature pads and logos travel as
	// base64 data URIs inside report payloads, so the default is raised.
	bodyLimitBytes := utils.ParseIntDefault(os.Getenv("BODY_LIMIT_BYTES"), 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = utils.ParseIntDefault(os.Getenv("BODY_LIMIT_MB"), 16) * 1024 * 1024
	}

	// ---- Fiber app with global error handler + body limit
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    bodyLimitBytes,
	})

	// ---- CORS
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: false, // using Bearer tokens, not cookies
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
	}))

	// ---- Global rate limiter (applies to all routes; tune via env)
	rlMax := utils.ParseIntDefault(os.Getenv("RATE_LIMIT_MAX"), 120)
	rlWindow := time.Duration(utils.ParseIntDefault(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 60)) * time.Second
	app.Use(limiter.New(limiter.Config{
		Max:        rlMax,
		Expiration: rlWindow,
		// Default KeyGenerator = client IP; default 429 handler is fine.
	}))

	// ---- Routes
	routes.Register(app)

	// ---- Start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.GetLogger().Infof("API server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		panic(err)
	}
}
