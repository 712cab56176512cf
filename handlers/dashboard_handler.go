package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/puterizamrud/tuition_admin/models"
	"github.com/puterizamrud/tuition_admin/reports"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Summary feeds the SPA landing page. The handler fetches a snapshot
// and leaves all aggregation to the reports package.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var studentCount int64
	if err := h.db.Model(&models.Student{}).Count(&studentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var payments []models.Payment
	if err := h.db.Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(reports.ComputeDashboardSummary(payments, studentCount, time.Now()))
}

func (h *DashboardHandler) StudentSummaries(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := h.db.Preload("Student").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(reports.SummarizeByStudent(payments))
}

func (h *DashboardHandler) MonthlyReport(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	var payments []models.Payment
	if err := h.db.Preload("Student").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	report, err := reports.BuildMonthlyReport(payments, c.Params("month"), year)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month name"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}
	return c.JSON(report)
}
