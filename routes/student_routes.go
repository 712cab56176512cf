package routes

import (
	"github.com/puterizamrud/tuition_admin/handlers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewStudentHandler(db)
	api := app.Group("/api/v1")

	students := api.Group("/students")
	students.Get("/", h.List)
	students.Post("/", h.Create)
	students.Get("/:id", h.Get)
	students.Patch("/:id", h.Update)
	students.Delete("/:id", h.Delete)
}
