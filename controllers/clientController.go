package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"auditpro-backend/database"
	"auditpro-backend/models"
	"auditpro-backend/utils"
)

func GetClients(c *fiber.Ctx) error {
	var clients []models.Client
	if err := database.FromCtx(c).Order("name").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not list clients", "error": err.Error()})
	}
	return c.JSON(clients)
}

func GetClient(c *fiber.Ctx) error {
	var client models.Client
	if err := database.FromCtx(c).First(&client, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "client not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load client", "error": err.Error()})
	}
	return c.JSON(client)
}

// SaveClient upserts a client by id.
func SaveClient(c *fiber.Ctx) error {
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	utils.NormalizeDTO(&client)
	if client.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "client name is required"})
	}
	if client.Status == "" {
		client.Status = models.ClientActive
	}

	db := database.FromCtx(c)
	if client.Id == "" {
		if err := db.Create(&client).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not create client", "error": err.Error()})
		}
	} else {
		if err := db.Save(&client).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not update client", "error": err.Error()})
		}
	}
	return c.JSON(client)
}

func DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.FromCtx(c).Delete(&models.Client{}, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not delete client", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}
