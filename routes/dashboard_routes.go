package routes

import (
	"github.com/puterizamrud/tuition_admin/handlers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewDashboardHandler(db)
	api := app.Group("/api/v1")

	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", h.Summary)
	dashboard.Get("/student-summaries", h.StudentSummaries)
	dashboard.Get("/monthly-report/:month/:year", h.MonthlyReport)
}
