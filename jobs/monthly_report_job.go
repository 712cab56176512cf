package jobs

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/puterizamrud/tuition_admin/invoices"
	"github.com/puterizamrud/tuition_admin/models"
	"github.com/puterizamrud/tuition_admin/notifications"
	"github.com/puterizamrud/tuition_admin/reports"
	"gorm.io/gorm"
)

// SendMonthlyReportEmail mails the previous month's fee report to the
// centre's own address. Scheduled for the morning of the 1st.
func SendMonthlyReportEmail(db *gorm.DB, company invoices.CompanyInfo) {
	log.Println("Running job: SendMonthlyReportEmail...")

	previous := time.Now().AddDate(0, -1, 0)

	var payments []models.Payment
	if err := db.Preload("Student").Find(&payments).Error; err != nil {
		log.Printf("Error fetching payments for monthly report: %v", err)
		return
	}

	report, err := reports.BuildMonthlyReport(payments, strconv.Itoa(int(previous.Month())), previous.Year())
	if err != nil {
		log.Printf("Error building monthly report: %v", err)
		return
	}

	monthName := reports.MonthName(report.Month)
	emailSubject := fmt.Sprintf("Monthly Fee Report: %s %d", monthName, report.Year)
	emailBody := fmt.Sprintf(
		"<h1>%s %d</h1><p><b>Total collected:</b> %s %.2f</p><p><b>Payments recorded:</b> %d</p>",
		monthName, report.Year, company.Currency, report.TotalAmount, report.PaymentCount,
	)
	for _, m := range report.PaymentMethodSummary {
		emailBody += fmt.Sprintf("<p>%s: %s %.2f (%d payments)</p>", m.Method, company.Currency, m.Total, m.Count)
	}

	notifications.SendEmail(company.Name, company.Email, emailSubject, emailBody)
}
