package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/puterizamrud/tuition_admin/invoices"
	"github.com/puterizamrud/tuition_admin/models"
	"github.com/puterizamrud/tuition_admin/reports"
	"github.com/puterizamrud/tuition_admin/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errInvalidYear = errors.New("invalid year")

type ExportHandler struct {
	db      *gorm.DB
	company invoices.CompanyInfo
}

func NewExportHandler(db *gorm.DB, company invoices.CompanyInfo) *ExportHandler {
	return &ExportHandler{db: db, company: company}
}

// Export streams the filtered payments as a JSON or XML e-invoice
// document. month/year/studentId query filters are all optional.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format := c.Params("format")
	if format != "json" && format != "xml" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid format. Use json or xml."})
	}

	payments, err := h.fetchFiltered(c, false)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month name provided"})
		}
		if errors.Is(err, errInvalidYear) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	doc := invoices.NewDocument(invoices.Lines(payments), h.company)

	switch format {
	case "json":
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"einvoice-%d.json\"", time.Now().UnixMilli()))
		return c.JSON(doc)
	default:
		out, err := invoices.MarshalXMLDocument(doc)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to serialize XML"})
		}
		c.Set(fiber.HeaderContentType, "application/xml")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"einvoice-%d.xml\"", time.Now().UnixMilli()))
		return c.Send(out)
	}
}

// ExportPDF renders the printable report and flattens it to an A4 PDF
// through the headless browser. month and year are required here; the
// report is always scoped to one calendar month.
func (h *ExportHandler) ExportPDF(c *fiber.Ctx) error {
	if c.Query("month") == "" || c.Query("year") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month and year are required for PDF export"})
	}

	payments, err := h.fetchFiltered(c, true)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month name provided"})
		}
		if errors.Is(err, errInvalidYear) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	lines := invoices.Lines(payments)
	htmlContent, err := invoices.RenderHTML(lines, h.company, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render report"})
	}

	pdfBytes, err := services.RenderPDF(context.Background(), htmlContent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error generating PDF", "message": err.Error()})
	}

	filename := fmt.Sprintf("einvoice-report-%d.pdf", time.Now().UnixMilli())
	go services.ArchiveExport(filename, pdfBytes)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"%s\"", filename))
	return c.Send(pdfBytes)
}

func (h *ExportHandler) fetchFiltered(c *fiber.Ctx, requireMonth bool) ([]models.Payment, error) {
	query := h.db.Preload("Student").Order("payment_date desc")

	monthParam := c.Query("month")
	yearParam := c.Query("year")
	if requireMonth || (monthParam != "" && yearParam != "") {
		month, err := reports.ParseMonth(monthParam)
		if err != nil {
			return nil, err
		}
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return nil, errInvalidYear
		}
		query = query.Where("month = ? AND year = ?", month, year)
	}
	if studentID := c.Query("studentId"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
