package routes

import (
	"github.com/puterizamrud/tuition_admin/handlers"
	"github.com/puterizamrud/tuition_admin/invoices"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB, company invoices.CompanyInfo) {
	h := handlers.NewPaymentHandler(db)
	e := handlers.NewExportHandler(db, company)
	api := app.Group("/api/v1")

	payments := api.Group("/payments")

	// Export routes must precede the parameterized ones.
	payments.Get("/export/einvoice/pdf", e.ExportPDF)
	payments.Get("/export/einvoice/:format", e.Export)

	payments.Get("/", h.List)
	payments.Post("/", h.Create)
	payments.Get("/student/:studentId", h.ListByStudent)
	payments.Get("/month/:month/year/:year", h.ListByMonthYear)
	payments.Get("/:id", h.Get)
	payments.Patch("/:id", h.Update)
	payments.Delete("/:id", h.Delete)
}
