package controllers

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"auditpro-backend/database"
	"auditpro-backend/middlewares"
	"auditpro-backend/models"
)

func authApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Post("/api/login", Login)
	app.Post("/api/logout", Logout)
	return app
}

func seedUser(t *testing.T, pin string) models.User {
	t.Helper()
	u := models.User{
		Name:             "Carlos Mendes",
		Pin:              pin,
		Role:             models.RoleAuditor,
		AllowedTemplates: datatypes.JSONSlice[models.TemplateKey]{models.TplAuditHACCP},
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	setupTestDB(t)
	app := authApp()
	seedUser(t, "123456")

	resp := postJSON(t, app, "/api/login", map[string]string{"pin": "123456"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Token == "" {
		t.Error("empty token")
	}
	if out.User.Name != "Carlos Mendes" {
		t.Errorf("user = %+v", out.User)
	}
}

func TestLoginWrongPin(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	setupTestDB(t)
	app := authApp()
	seedUser(t, "123456")

	resp := postJSON(t, app, "/api/login", map[string]string{"pin": "654321"})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestLoginValidatesPinShape(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	setupTestDB(t)
	app := authApp()

	for _, pin := range []string{"", "12345", "abcdef"} {
		resp := postJSON(t, app, "/api/login", map[string]string{"pin": pin})
		if resp.StatusCode != fiber.StatusUnprocessableEntity {
			t.Errorf("pin %q: status = %d, want 422", pin, resp.StatusCode)
		}
	}
}
