package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"auditpro-backend/database"
	"auditpro-backend/middlewares"
	"auditpro-backend/models"
)

type loginInput struct {
	Pin string `json:"pin" validate:"required,len=6,numeric"`
}

// Login matches the submitted 6-digit PIN against the user list and issues
// a session token. This is capability selection for a shared field device,
// not an authentication boundary; the PIN is compared verbatim.
func Login(c *fiber.Ctx) error {
	var in loginInput
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	var user models.User
	if err := database.FromCtx(c).Where("pin = ?", in.Pin).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "PIN inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "login failed", "error": err.Error()})
	}

	token, err := middlewares.GenerateJWT(user.Id, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not issue token"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout is stateless; the client just drops its token.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "success"})
}
