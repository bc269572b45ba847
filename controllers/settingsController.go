package controllers

import (
	"github.com/gofiber/fiber/v2"

	"auditpro-backend/database"
	"auditpro-backend/models"
	"auditpro-backend/utils"
)

func GetSettings(c *fiber.Ctx) error {
	var settings models.CompanySettings
	if err := database.FromCtx(c).First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load settings", "error": err.Error()})
	}
	return c.JSON(settings)
}

type settingsUpdate struct {
	Name       *string `json:"name"`
	TaxId      *string `json:"tax_id"`
	Address    *string `json:"address"`
	PostalCode *string `json:"postal_code"`
	Locality   *string `json:"locality"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Website    *string `json:"website"`
	LogoData   *string `json:"logo_data"`
}

// UpdateSettings applies a partial update to the singleton settings row.
// Admin only (route-gated).
func UpdateSettings(c *fiber.Ctx) error {
	var in settingsUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	utils.NormalizePtrDTO(&in)

	updates := utils.UpdatesFromPtrDTO(&in, nil)
	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "nothing to update"})
	}

	db := database.FromCtx(c)
	var settings models.CompanySettings
	if err := db.First(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load settings", "error": err.Error()})
	}
	if err := db.Model(&settings).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not update settings", "error": err.Error()})
	}
	return c.JSON(settings)
}
