// Package reports is the aggregation core of the tuition admin backend.
// Every function here is a pure transformation over an already-fetched
// snapshot of payment records: no I/O, no shared state, and inputs are
// never mutated. Handlers fetch a snapshot per request and hand it in.
//
// The JSON keys on the summary shapes ("_id" for group keys) are the
// ones the dashboard SPA already reads; keep them stable.
package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/puterizamrud/tuition_admin/models"
)

type MethodSummary struct {
	Method string  `json:"_id"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

type MonthTotal struct {
	Month string  `json:"_id"`
	Total float64 `json:"total"`
}

// SummaryStudent is the joined slice of a student carried on a
// per-student summary entry.
type SummaryStudent struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RecordedName string    `json:"recordedName"`
}

type StudentSummary struct {
	Student         SummaryStudent `json:"_id"`
	TotalPaid       float64        `json:"totalPaid"`
	PaymentCount    int            `json:"paymentCount"`
	LastPaymentDate time.Time      `json:"lastPaymentDate"`
}

type MonthlyReport struct {
	Month                int              `json:"month"`
	Year                 int              `json:"year"`
	TotalAmount          float64          `json:"totalAmount"`
	PaymentCount         int              `json:"paymentCount"`
	Payments             []models.Payment `json:"payments"`
	PaymentMethodSummary []MethodSummary  `json:"paymentMethodSummary"`
}

type DashboardSummary struct {
	TotalStudents              int64           `json:"totalStudents"`
	TotalPayments              float64         `json:"totalPayments"`
	CurrentMonthPayments       float64         `json:"currentMonthPayments"`
	PaymentMethodsDistribution []MethodSummary `json:"paymentMethodsDistribution"`
	MonthlyPayments            []MonthTotal    `json:"monthlyPayments"`
	CurrentMonth               string          `json:"currentMonth"`
	CurrentYear                int             `json:"currentYear"`
}

// SummarizeByPaymentMethod groups payments by method, sorted by total
// descending. Ties keep first-seen order, so the result is stable for
// a given input. The per-group totals always sum to the input sum.
func SummarizeByPaymentMethod(payments []models.Payment) []MethodSummary {
	index := make(map[string]int)
	summaries := make([]MethodSummary, 0)

	for _, p := range payments {
		i, ok := index[p.PaymentMethod]
		if !ok {
			i = len(summaries)
			index[p.PaymentMethod] = i
			summaries = append(summaries, MethodSummary{Method: p.PaymentMethod})
		}
		summaries[i].Count++
		summaries[i].Total += p.Amount
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})
	return summaries
}

// SummarizeByMonth totals the given year's payments per calendar month,
// in chronological order. Months without payments are omitted.
func SummarizeByMonth(payments []models.Payment, year int) []MonthTotal {
	var totals [12]float64
	var seen [12]bool

	for _, p := range payments {
		if p.Year != year || p.Month < 1 || p.Month > 12 {
			continue
		}
		totals[p.Month-1] += p.Amount
		seen[p.Month-1] = true
	}

	result := make([]MonthTotal, 0)
	for i := 0; i < 12; i++ {
		if seen[i] {
			result = append(result, MonthTotal{Month: monthNames[i], Total: totals[i]})
		}
	}
	return result
}

// SummarizeByStudent builds one entry per distinct student present in
// the input, ordered by most recent payment first.
func SummarizeByStudent(payments []models.Payment) []StudentSummary {
	index := make(map[uuid.UUID]int)
	summaries := make([]StudentSummary, 0)

	for _, p := range payments {
		i, ok := index[p.StudentID]
		if !ok {
			i = len(summaries)
			index[p.StudentID] = i
			summaries = append(summaries, StudentSummary{
				Student: SummaryStudent{
					ID:           p.StudentID,
					Name:         p.Student.Name,
					RecordedName: p.Student.RecordedName,
				},
			})
		}
		summaries[i].TotalPaid += p.Amount
		summaries[i].PaymentCount++
		if p.PaymentDate.After(summaries[i].LastPaymentDate) {
			summaries[i].LastPaymentDate = p.PaymentDate
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastPaymentDate.After(summaries[j].LastPaymentDate)
	})
	return summaries
}

// BuildMonthlyReport filters the payment snapshot to one calendar month
// and totals it. The month may be a 1-12 number or a month name;
// anything else fails with ErrInvalidMonth.
func BuildMonthlyReport(payments []models.Payment, month string, year int) (MonthlyReport, error) {
	monthNumber, err := ParseMonth(month)
	if err != nil {
		return MonthlyReport{}, err
	}

	filtered := make([]models.Payment, 0)
	var total float64
	for _, p := range payments {
		if p.Month == monthNumber && p.Year == year {
			filtered = append(filtered, p)
			total += p.Amount
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PaymentDate.Before(filtered[j].PaymentDate)
	})

	return MonthlyReport{
		Month:                monthNumber,
		Year:                 year,
		TotalAmount:          total,
		PaymentCount:         len(filtered),
		Payments:             filtered,
		PaymentMethodSummary: SummarizeByPaymentMethod(filtered),
	}, nil
}

// ComputeDashboardSummary produces the landing-page summary from the
// full payment snapshot. Current month/year are taken from now.
func ComputeDashboardSummary(payments []models.Payment, studentCount int64, now time.Time) DashboardSummary {
	currentMonth := int(now.Month())
	currentYear := now.Year()

	var grandTotal, currentMonthTotal float64
	for _, p := range payments {
		grandTotal += p.Amount
		if p.Month == currentMonth && p.Year == currentYear {
			currentMonthTotal += p.Amount
		}
	}

	return DashboardSummary{
		TotalStudents:              studentCount,
		TotalPayments:              grandTotal,
		CurrentMonthPayments:       currentMonthTotal,
		PaymentMethodsDistribution: SummarizeByPaymentMethod(payments),
		MonthlyPayments:            SummarizeByMonth(payments, currentYear),
		CurrentMonth:               MonthName(currentMonth),
		CurrentYear:                currentYear,
	}
}
