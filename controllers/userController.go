package controllers

import (
	"github.com/gofiber/fiber/v2"

	"auditpro-backend/database"
	"auditpro-backend/models"
)

func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.FromCtx(c).Order("name").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not list users", "error": err.Error()})
	}
	return c.JSON(users)
}

// SaveUser upserts a user by id (a missing id creates a new one). The PIN
// and the allowed-template set are whatever the admin screen submitted; the
// role constraint on allowed templates is a UI concern.
func SaveUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	if user.Name == "" || user.Role == "" || len(user.Pin) != 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, role and a 6-digit pin are required"})
	}

	db := database.FromCtx(c)
	if user.Id == "" {
		if err := db.Create(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not create user", "error": err.Error()})
		}
	} else {
		if err := db.Save(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not update user", "error": err.Error()})
		}
	}
	return c.JSON(user)
}

func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.FromCtx(c).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not delete user", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
