package routes

import (
	"github.com/gofiber/fiber/v2"

	"auditpro-backend/controllers"
	"auditpro-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction for mutating methods
	protected.Use(middlewares.RequestTx())

	// Templates (static catalog)
	protected.Get("/templates", controllers.GetTemplates)

	// Clients
	protected.Get("/clients", controllers.GetClients)
	protected.Get("/clients/:id", controllers.GetClient)
	protected.Post("/clients", controllers.SaveClient)
	protected.Delete("/clients/:id", controllers.DeleteClient)

	// Reports (full nested record, upsert-by-id)
	protected.Get("/reports", controllers.GetReports)
	protected.Get("/reports/:id", controllers.GetReport)
	protected.Post("/reports", controllers.SaveReport)
	protected.Delete("/reports/:id", controllers.DeleteReport)

	// Report exports (available in every mode, signatures never required)
	protected.Get("/reports/:id/pdf", controllers.ExportReportPDF)
	protected.Get("/reports/:id/order-pdf", controllers.ExportOrderPDF)
	protected.Get("/reports/:id/email", controllers.EmailIntent)

	// Settings readable by everyone (report header needs them); writes are
	// admin-only.
	protected.Get("/settings", controllers.GetSettings)
	protected.Post("/settings", middlewares.RequireAdmin(), controllers.UpdateSettings)

	// Admin-only user administration (PINs travel in the clear here)
	protected.Get("/users", middlewares.RequireAdmin(), controllers.GetUsers)
	protected.Post("/users", middlewares.RequireAdmin(), controllers.SaveUser)
	protected.Delete("/users/:id", middlewares.RequireAdmin(), controllers.DeleteUser)
}
