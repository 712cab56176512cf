// Package invoices turns student-joined payment records into e-invoice
// documents. Like reports, it is pure: the caller fetches and filters the
// payments, this package only shapes them.
package invoices

import (
	"fmt"
	"strings"
	"time"

	"github.com/puterizamrud/tuition_admin/models"
	"github.com/puterizamrud/tuition_admin/reports"
)

// Fixed tax treatment for this deployment. The centre issues tax-free
// invoices, so these never vary per line.
const (
	TaxTypeStandardRate          = "Standard Rate"
	ClassificationGeneralExpense = "General Expenses"
)

type CompanyInfo struct {
	Name               string `json:"name" xml:"Name"`
	RegistrationNumber string `json:"registrationNumber" xml:"RegistrationNumber"`
	Email              string `json:"email" xml:"Email"`
	Address            string `json:"address" xml:"Address"`
	Currency           string `json:"currency" xml:"Currency"`
}

type Buyer struct {
	Name          string `json:"name" xml:"Name"`
	ContactNumber string `json:"contactNumber" xml:"ContactNumber"`
	Email         string `json:"email" xml:"Email"`
}

type Line struct {
	InvoiceNumber      string    `json:"invoiceNumber" xml:"InvoiceNumber"`
	InvoiceDate        time.Time `json:"invoiceDate" xml:"InvoiceDate"`
	Buyer              Buyer     `json:"buyer" xml:"Buyer"`
	ServiceDescription string    `json:"serviceDescription" xml:"ServiceDescription"`
	UnitPrice          float64   `json:"unitPrice" xml:"UnitPrice"`
	TaxType            string    `json:"taxType" xml:"TaxType"`
	TaxAmount          float64   `json:"taxAmount" xml:"TaxAmount"`
	TotalExcludingTax  float64   `json:"totalExcludingTax" xml:"TotalExcludingTax"`
	TotalIncludingTax  float64   `json:"totalIncludingTax" xml:"TotalIncludingTax"`
	TotalAmountPayable float64   `json:"totalAmountPayable" xml:"TotalAmountPayable"`
	PaymentMethod      string    `json:"paymentMethod" xml:"PaymentMethod"`
	Classification     string    `json:"classification" xml:"Classification"`
}

// Document is the structured e-invoice export consumed as JSON.
type Document struct {
	CompanyInfo CompanyInfo `json:"companyInfo"`
	Invoices    []Line      `json:"invoices"`
}

// Lines builds one invoice line per payment, preserving input order.
func Lines(payments []models.Payment) []Line {
	lines := make([]Line, 0, len(payments))
	for _, p := range payments {
		lines = append(lines, Line{
			InvoiceNumber:      InvoiceNumber(p.ID.String()),
			InvoiceDate:        p.PaymentDate,
			Buyer:              buyerFor(p.Student),
			ServiceDescription: serviceDescription(p.Month, p.Year),
			UnitPrice:          p.Amount,
			TaxType:            TaxTypeStandardRate,
			TaxAmount:          0,
			TotalExcludingTax:  p.Amount,
			TotalIncludingTax:  p.Amount,
			TotalAmountPayable: p.Amount,
			PaymentMethod:      p.PaymentMethod,
			Classification:     ClassificationGeneralExpense,
		})
	}
	return lines
}

func NewDocument(lines []Line, company CompanyInfo) Document {
	return Document{CompanyInfo: company, Invoices: lines}
}

// InvoiceNumber derives the human-facing invoice number from a payment
// id: "INV-" plus the id's last eight characters, uppercased.
func InvoiceNumber(paymentID string) string {
	suffix := paymentID
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return "INV-" + strings.ToUpper(suffix)
}

// Total sums the unit prices of the given lines.
func Total(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.UnitPrice
	}
	return total
}

func buyerFor(s models.Student) Buyer {
	name := s.Name
	if name == "" {
		name = s.RecordedName
	}
	if name == "" {
		name = "N/A"
	}
	return Buyer{
		Name:          name,
		ContactNumber: s.ContactNumber,
		Email:         s.Email,
	}
}

func serviceDescription(month, year int) string {
	name := reports.MonthName(month)
	if name == "" {
		name = "N/A"
	}
	return fmt.Sprintf("Tuition fees for %s %d", name, year)
}
