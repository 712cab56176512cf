package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/puterizamrud/tuition_admin/models"
	"github.com/puterizamrud/tuition_admin/reports"
	"github.com/puterizamrud/tuition_admin/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type CreatePaymentRequest struct {
	StudentID     string     `json:"studentId" validate:"required,uuid"`
	Amount        float64    `json:"amount" validate:"gte=0"`
	PaymentMethod string     `json:"paymentMethod" validate:"required,oneof=cash bank_transfer card online cheque other"`
	PaymentDate   *time.Time `json:"paymentDate"`
	Description   string     `json:"description"`
	ReceiptNumber *string    `json:"receiptNumber"`
}

type UpdatePaymentRequest struct {
	Amount        *float64   `json:"amount" validate:"omitempty,gte=0"`
	PaymentMethod *string    `json:"paymentMethod" validate:"omitempty,oneof=cash bank_transfer card online cheque other"`
	PaymentDate   *time.Time `json:"paymentDate"`
	Description   *string    `json:"description"`
	ReceiptNumber *string    `json:"receiptNumber"`
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := h.db.Preload("Student").Order("payment_date desc").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) ListByStudent(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := h.db.Preload("Student").
		Where("student_id = ?", c.Params("studentId")).
		Order("payment_date desc").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) ListByMonthYear(c *fiber.Ctx) error {
	month, err := reports.ParseMonth(c.Params("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid month name"})
	}
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
	}

	var payments []models.Payment
	if err := h.db.Preload("Student").
		Where("month = ? AND year = ?", month, year).
		Order("payment_date desc").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	var payment models.Payment
	if err := h.db.Preload("Student").First(&payment, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID := uuid.MustParse(req.StudentID)
	var student models.Student
	if err := h.db.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	receiptNumber := req.ReceiptNumber
	if receiptNumber == nil || *receiptNumber == "" {
		generated, err := utils.GenerateUniqueReceiptNumber(h.db)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate receipt number"})
		}
		receiptNumber = &generated
	}

	payment := models.Payment{
		StudentID:     studentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
		ReceiptNumber: receiptNumber,
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}

	if err := h.db.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	payment.Student = student
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var payment models.Payment
	if err := h.db.Preload("Student").First(&payment, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var req UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
		payment.DeriveMonthYear()
	}
	if req.Description != nil {
		payment.Description = *req.Description
	}
	if req.ReceiptNumber != nil {
		payment.ReceiptNumber = req.ReceiptNumber
	}

	if err := h.db.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	result := h.db.Delete(&models.Payment{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted"})
}
