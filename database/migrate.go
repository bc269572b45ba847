package database

import (
	"gorm.io/gorm"

	"auditpro-backend/config"
	"auditpro-backend/models"
)

func AutoMigrate() {
	if err := DB.AutoMigrate(
		&models.User{}, &models.Client{}, &models.Report{},
		&models.CompanySettings{}, &models.IdempotencyKey{},
	); err != nil {
		config.GetLogger().Fatalf("migrate failed: %v", err)
	}
	if err := SeedDefaults(DB); err != nil {
		config.GetLogger().Fatalf("seed failed: %v", err)
	}
}

// SeedDefaults creates the singleton company settings row and a bootstrap
// admin on an empty database. Real values are set afterwards through the
// settings and user screens.
func SeedDefaults(db *gorm.DB) error {
	var settingsCount int64
	if err := db.Model(&models.CompanySettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		defaults := models.CompanySettings{
			Name:       "AuditPro Solutions, Lda",
			TaxId:      "500100200",
			Address:    "Parque Tecnológico, Edifício A",
			PostalCode: "4000-123",
			Locality:   "Porto",
			Email:      "geral@auditpro.pt",
			Phone:      "222 333 444",
			Website:    "www.auditpro.pt",
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		admin := models.User{
			Name: "Administrador",
			Role: models.RoleAdmin,
			Pin:  "123456",
			AllowedTemplates: []models.TemplateKey{
				models.TplVisitComercial, models.TplAuditPool, models.TplAuditHACCP,
				models.TplMaintPrev, models.TplSafetyCheck, models.TplPestControl,
				models.TplInterventionGeneral,
			},
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}
	return nil
}
