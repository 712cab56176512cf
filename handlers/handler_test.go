package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/puterizamrud/tuition_admin/invoices"
	"github.com/puterizamrud/tuition_admin/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Student{}, &models.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var testCompany = invoices.CompanyInfo{
	Name:               "Pusat Tuisyen Aspirasi Murni",
	RegistrationNumber: "202403330624 (003678967-P)",
	Email:              "puterizamrud@gmail.com",
	Address:            "NO 56-1, JALAN SERI IMPIAN 8/1B,BANDAR SERI IMPIAN,86000 KLUANG,JOHOR",
	Currency:           "RM",
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	sh := NewStudentHandler(db)
	students := app.Group("/api/v1/students")
	students.Get("/", sh.List)
	students.Post("/", sh.Create)
	students.Get("/:id", sh.Get)
	students.Patch("/:id", sh.Update)
	students.Delete("/:id", sh.Delete)

	ph := NewPaymentHandler(db)
	eh := NewExportHandler(db, testCompany)
	payments := app.Group("/api/v1/payments")
	payments.Get("/export/einvoice/pdf", eh.ExportPDF)
	payments.Get("/export/einvoice/:format", eh.Export)
	payments.Get("/", ph.List)
	payments.Post("/", ph.Create)
	payments.Get("/student/:studentId", ph.ListByStudent)
	payments.Get("/month/:month/year/:year", ph.ListByMonthYear)
	payments.Get("/:id", ph.Get)
	payments.Patch("/:id", ph.Update)
	payments.Delete("/:id", ph.Delete)

	dh := NewDashboardHandler(db)
	dashboard := app.Group("/api/v1/dashboard")
	dashboard.Get("/summary", dh.Summary)
	dashboard.Get("/student-summaries", dh.StudentSummaries)
	dashboard.Get("/monthly-report/:month/:year", dh.MonthlyReport)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, respBody
}

func decode(t *testing.T, data []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal %s: %v", string(data), err)
	}
}

func seedStudent(t *testing.T, db *gorm.DB, name string) models.Student {
	t.Helper()
	student := models.Student{Name: name}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

func seedPayment(t *testing.T, db *gorm.DB, student models.Student, amount float64, method string, paymentDate time.Time) models.Payment {
	t.Helper()
	payment := models.Payment{
		StudentID:     student.ID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   paymentDate,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return payment
}
