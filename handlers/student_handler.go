package handlers

import (
	"errors"

	"github.com/puterizamrud/tuition_admin/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

type CreateStudentRequest struct {
	Name          string `json:"name" validate:"required,min=1"`
	RecordedName  string `json:"recordedName"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email" validate:"omitempty,email"`
}

type UpdateStudentRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	RecordedName  *string `json:"recordedName"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email" validate:"omitempty,email"`
}

func (h *StudentHandler) List(c *fiber.Ctx) error {
	var students []models.Student
	if err := h.db.Order("name asc").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(students)
}

func (h *StudentHandler) Get(c *fiber.Ctx) error {
	var student models.Student
	if err := h.db.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(student)
}

func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student := models.Student{
		Name:          req.Name,
		RecordedName:  req.RecordedName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}
	if err := h.db.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *StudentHandler) Update(c *fiber.Ctx) error {
	var student models.Student
	if err := h.db.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.RecordedName != nil {
		student.RecordedName = *req.RecordedName
	}
	if req.ContactNumber != nil {
		student.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		student.Email = *req.Email
	}

	if err := h.db.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

// Delete removes the student record only. Payments stay: the centre
// keeps its financial history even after a student leaves.
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	result := h.db.Delete(&models.Student{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
