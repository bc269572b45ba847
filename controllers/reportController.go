package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"auditpro-backend/database"
	"auditpro-backend/models"
	"auditpro-backend/report"
)

func GetReports(c *fiber.Ctx) error {
	var reports []models.Report
	if err := database.FromCtx(c).Order("date DESC").Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not list reports", "error": err.Error()})
	}
	return c.JSON(reports)
}

func GetReport(c *fiber.Ctx) error {
	var rec models.Report
	if err := database.FromCtx(c).First(&rec, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "report not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load report", "error": err.Error()})
	}
	return c.JSON(rec)
}

// SaveReport upserts the full nested report record (criteria list and order
// travel as embedded blobs). The persisted order total is never trusted
// from the payload: line totals and the aggregate are recomputed here
// before the record is stored. Editing an already finalized report is an
// admin-only exception.
func SaveReport(c *fiber.Ctx) error {
	var rec models.Report
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	tpl, ok := models.TemplateByKey(rec.TypeKey)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown report type"})
	}
	if rec.TypeName == "" {
		rec.TypeName = tpl.Label
	}
	if rec.Status == "" {
		rec.Status = models.ReportFinalized
	}

	db := database.FromCtx(c)

	if rec.Id != "" {
		var existing models.Report
		err := db.First(&existing, "id = ?", rec.Id).Error
		if err == nil && existing.Status == models.ReportFinalized {
			if role, _ := c.Locals("role").(string); role != string(models.RoleAdmin) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "finalized reports can only be edited by an administrator"})
			}
			// An edit never re-captures GPS; keep the original stamp.
			rec.SetLocation(existing.Location())
		} else if err != nil && err != gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not load report", "error": err.Error()})
		}
	}

	// Recompute every derived order figure; the stored value is not a
	// source of truth.
	rec.SetSalesOrder(report.NewLedgerFromOrder(rec.SalesOrder(), false).Order())

	if err := database.NewReportStore(db).SaveReport(c.Context(), &rec); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not save report", "error": err.Error()})
	}
	return c.JSON(rec)
}

func DeleteReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.FromCtx(c).Delete(&models.Report{}, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not delete report", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// openForExport hydrates the report plus its client and the company
// settings. A missing client row falls back to the denormalized snapshot on
// the report itself; a missing settings row falls back to zero values. Both
// degradations keep the export available.
func openForExport(c *fiber.Ctx) (*report.Orchestrator, error) {
	db := database.FromCtx(c)

	var rec models.Report
	if err := db.First(&rec, "id = ?", c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "report not found")
		}
		return nil, err
	}

	var client models.Client
	if err := db.First(&client, "id = ?", rec.ClientID).Error; err != nil {
		client = models.Client{
			Id:       rec.ClientID,
			Name:     rec.ClientName,
			ShopName: rec.ClientShopName,
		}
	}

	var settings models.CompanySettings
	_ = db.First(&settings).Error

	orch := report.NewOrchestrator(report.ModeView, nil, client, settings)
	orch.Open(&rec)
	return orch, nil
}

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportReportPDF streams the full report PDF. A render failure aborts this
// export only; nothing else in the application is affected.
func ExportReportPDF(c *fiber.Ctx) error {
	orch, err := openForExport(c)
	if err != nil {
		return err
	}
	filename, data, err := orch.ExportReportPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not render PDF", "error": err.Error()})
	}
	return sendPDF(c, filename, data)
}

// ExportOrderPDF streams the standalone order sheet.
func ExportOrderPDF(c *fiber.Ctx) error {
	orch, err := openForExport(c)
	if err != nil {
		return err
	}
	filename, data, err := orch.ExportOrderPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not render PDF", "error": err.Error()})
	}
	return sendPDF(c, filename, data)
}

// EmailIntent returns the mailto URL for the report plus the filename the
// caller should attach after downloading the PDF separately.
func EmailIntent(c *fiber.Ctx) error {
	orch, err := openForExport(c)
	if err != nil {
		return err
	}
	mailto, filename, _, err := orch.EmailIntent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "could not compose email", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"mailto": mailto, "filename": filename})
}

// GetTemplates serves the report-template catalog, narrowed to the types the
// authenticated user may create. Admins and unknown users get the full
// catalog; viewing a stored report never needs a template entry.
func GetTemplates(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	role, _ := c.Locals("role").(string)
	if userID == "" || role == string(models.RoleAdmin) {
		return c.JSON(models.Templates)
	}

	var user models.User
	if err := database.FromCtx(c).First(&user, "id = ?", userID).Error; err != nil {
		return c.JSON(models.Templates)
	}

	allowed := make(map[models.TemplateKey]models.ReportTemplate, len(user.AllowedTemplates))
	for key, tpl := range models.Templates {
		if user.MayCreate(key) {
			allowed[key] = tpl
		}
	}
	return c.JSON(allowed)
}
