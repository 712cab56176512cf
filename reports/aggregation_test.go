package reports

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/puterizamrud/tuition_admin/models"
)

func pay(student uuid.UUID, amount float64, method string, date time.Time) models.Payment {
	return models.Payment{
		ID:            uuid.New(),
		StudentID:     student,
		Amount:        amount,
		PaymentMethod: method,
		PaymentDate:   date,
		Month:         int(date.Month()),
		Year:          date.Year(),
	}
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 10, 0, 0, 0, time.UTC)
}

func TestParseMonth(t *testing.T) {
	cases := []struct {
		in  string
		out int
		ok  bool
	}{
		{"3", 3, true},
		{"12", 12, true},
		{"1", 1, true},
		{"March", 3, true},
		{"march", 3, true},
		{"DECEMBER", 12, true},
		{" March ", 3, true},
		{"Marchx", 0, false},
		{"0", 0, false},
		{"13", 0, false},
		{"-1", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseMonth(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("ParseMonth(%q) = %d, %v; want %d", tc.in, got, err, tc.out)
			}
		} else if err == nil {
			t.Fatalf("ParseMonth(%q) expected error, got %d", tc.in, got)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(3); got != "March" {
		t.Fatalf("MonthName(3) = %q", got)
	}
	if got := MonthName(0); got != "" {
		t.Fatalf("MonthName(0) = %q, want empty", got)
	}
	if got := MonthName(13); got != "" {
		t.Fatalf("MonthName(13) = %q, want empty", got)
	}
}

func TestSummarizeByPaymentMethod(t *testing.T) {
	s := uuid.New()
	payments := []models.Payment{
		pay(s, 50, models.MethodOnline, date(2024, 3, 5)),
		pay(s, 100, models.MethodCash, date(2024, 3, 1)),
		pay(s, 25, models.MethodCash, date(2024, 3, 9)),
		pay(s, 125, models.MethodBankTransfer, date(2024, 4, 2)),
	}

	got := SummarizeByPaymentMethod(payments)

	if len(got) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(got))
	}
	// cash and bank_transfer tie at 125; cash was seen first.
	if got[0].Method != models.MethodCash || got[0].Total != 125 || got[0].Count != 2 {
		t.Fatalf("unexpected first group: %+v", got[0])
	}
	if got[1].Method != models.MethodBankTransfer || got[1].Total != 125 || got[1].Count != 1 {
		t.Fatalf("unexpected second group: %+v", got[1])
	}
	if got[2].Method != models.MethodOnline || got[2].Total != 50 {
		t.Fatalf("unexpected third group: %+v", got[2])
	}

	var groupSum, inputSum float64
	for _, g := range got {
		groupSum += g.Total
	}
	for _, p := range payments {
		inputSum += p.Amount
	}
	if groupSum != inputSum {
		t.Fatalf("group totals %v != input total %v", groupSum, inputSum)
	}
}

func TestSummarizeByPaymentMethodEmpty(t *testing.T) {
	got := SummarizeByPaymentMethod(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSummarizeByMonth(t *testing.T) {
	s := uuid.New()
	payments := []models.Payment{
		pay(s, 100, models.MethodCash, date(2024, 3, 1)),
		pay(s, 50, models.MethodOnline, date(2024, 3, 15)),
		pay(s, 75, models.MethodCash, date(2024, 7, 1)),
		pay(s, 999, models.MethodCash, date(2023, 7, 1)), // other year, excluded
	}

	got := SummarizeByMonth(payments, 2024)

	want := []MonthTotal{
		{Month: "March", Total: 150},
		{Month: "July", Total: 75},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for _, entry := range got {
		if entry.Total == 0 {
			t.Fatalf("zero-total month %q should be omitted", entry.Month)
		}
	}
}

func TestSummarizeByStudent(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	payments := []models.Payment{
		pay(alice, 100, models.MethodCash, date(2024, 1, 10)),
		pay(bob, 60, models.MethodOnline, date(2024, 2, 5)),
		pay(alice, 40, models.MethodCash, date(2024, 3, 20)),
	}
	payments[0].Student = models.Student{Name: "Alice", RecordedName: "Alice Binti Ali"}
	payments[2].Student = payments[0].Student
	payments[1].Student = models.Student{Name: "Bob"}

	got := SummarizeByStudent(payments)

	if len(got) != 2 {
		t.Fatalf("expected 2 students, got %d", len(got))
	}
	// Alice paid most recently (March), so she comes first.
	if got[0].Student.ID != alice {
		t.Fatalf("expected alice first, got %+v", got[0])
	}
	if got[0].TotalPaid != 140 || got[0].PaymentCount != 2 {
		t.Fatalf("unexpected alice summary: %+v", got[0])
	}
	if !got[0].LastPaymentDate.Equal(date(2024, 3, 20)) {
		t.Fatalf("unexpected lastPaymentDate: %v", got[0].LastPaymentDate)
	}
	if got[0].Student.Name != "Alice" || got[0].Student.RecordedName != "Alice Binti Ali" {
		t.Fatalf("joined student fields missing: %+v", got[0].Student)
	}
	if got[1].Student.ID != bob || got[1].TotalPaid != 60 || got[1].PaymentCount != 1 {
		t.Fatalf("unexpected bob summary: %+v", got[1])
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	s := uuid.New()
	payments := []models.Payment{
		pay(s, 50, models.MethodOnline, date(2024, 3, 15)),
		pay(s, 100, models.MethodCash, date(2024, 3, 1)),
		pay(s, 75, models.MethodCash, date(2024, 4, 1)),
	}

	report, err := BuildMonthlyReport(payments, "3", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Month != 3 || report.Year != 2024 {
		t.Fatalf("unexpected month/year: %d/%d", report.Month, report.Year)
	}
	if report.TotalAmount != 150 {
		t.Fatalf("totalAmount = %v, want 150", report.TotalAmount)
	}
	if report.PaymentCount != 2 || len(report.Payments) != 2 {
		t.Fatalf("paymentCount = %d, payments = %d", report.PaymentCount, len(report.Payments))
	}
	// Filtered payments are sorted ascending by date.
	if !report.Payments[0].PaymentDate.Before(report.Payments[1].PaymentDate) {
		t.Fatalf("payments not sorted ascending by date")
	}

	summary := report.PaymentMethodSummary
	if len(summary) != 2 {
		t.Fatalf("expected 2 method groups, got %d", len(summary))
	}
	if summary[0].Method != models.MethodCash || summary[0].Total != 100 || summary[0].Count != 1 {
		t.Fatalf("unexpected first method group: %+v", summary[0])
	}
	if summary[1].Method != models.MethodOnline || summary[1].Total != 50 || summary[1].Count != 1 {
		t.Fatalf("unexpected second method group: %+v", summary[1])
	}
}

func TestBuildMonthlyReportMonthName(t *testing.T) {
	s := uuid.New()
	payments := []models.Payment{
		pay(s, 100, models.MethodCash, date(2024, 3, 1)),
		pay(s, 50, models.MethodOnline, date(2024, 3, 15)),
	}

	byNumber, err := BuildMonthlyReport(payments, "3", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byName, err := BuildMonthlyReport(payments, "March", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(byNumber, byName) {
		t.Fatalf("numeric and named month reports differ")
	}

	if _, err := BuildMonthlyReport(payments, "Marchx", 2024); err == nil {
		t.Fatalf("expected error for unknown month name")
	}
}

func TestBuildMonthlyReportEmpty(t *testing.T) {
	report, err := BuildMonthlyReport(nil, "6", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalAmount != 0 || report.PaymentCount != 0 {
		t.Fatalf("expected zero totals, got %+v", report)
	}
	if report.Payments == nil || report.PaymentMethodSummary == nil {
		t.Fatalf("expected empty lists, got nils")
	}
}

func TestAggregationDoesNotMutateInput(t *testing.T) {
	s := uuid.New()
	payments := []models.Payment{
		pay(s, 50, models.MethodOnline, date(2024, 3, 15)),
		pay(s, 100, models.MethodCash, date(2024, 3, 1)),
	}
	snapshot := make([]models.Payment, len(payments))
	copy(snapshot, payments)

	first, err := BuildMonthlyReport(payments, "March", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildMonthlyReport(payments, "March", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls returned different results")
	}
	if !reflect.DeepEqual(payments, snapshot) {
		t.Fatalf("input slice was mutated")
	}

	SummarizeByPaymentMethod(payments)
	SummarizeByStudent(payments)
	SummarizeByMonth(payments, 2024)
	if !reflect.DeepEqual(payments, snapshot) {
		t.Fatalf("summaries mutated their input")
	}
}

func TestComputeDashboardSummary(t *testing.T) {
	now := date(2024, 3, 20)
	s := uuid.New()
	payments := []models.Payment{
		pay(s, 100, models.MethodCash, date(2024, 3, 1)),
		pay(s, 50, models.MethodOnline, date(2024, 3, 15)),
		pay(s, 75, models.MethodCash, date(2024, 1, 10)),
		pay(s, 20, models.MethodCash, date(2023, 3, 10)), // previous year
	}

	got := ComputeDashboardSummary(payments, 7, now)

	if got.TotalStudents != 7 {
		t.Fatalf("totalStudents = %d", got.TotalStudents)
	}
	if got.TotalPayments != 245 {
		t.Fatalf("totalPayments = %v, want 245", got.TotalPayments)
	}
	if got.CurrentMonthPayments != 150 {
		t.Fatalf("currentMonthPayments = %v, want 150", got.CurrentMonthPayments)
	}
	if got.CurrentMonth != "March" || got.CurrentYear != 2024 {
		t.Fatalf("unexpected current month/year: %s %d", got.CurrentMonth, got.CurrentYear)
	}
	wantMonthly := []MonthTotal{
		{Month: "January", Total: 75},
		{Month: "March", Total: 150},
	}
	if !reflect.DeepEqual(got.MonthlyPayments, wantMonthly) {
		t.Fatalf("monthlyPayments = %+v, want %+v", got.MonthlyPayments, wantMonthly)
	}
}

func TestComputeDashboardSummaryEmpty(t *testing.T) {
	got := ComputeDashboardSummary(nil, 0, date(2024, 6, 1))

	if got.TotalStudents != 0 || got.TotalPayments != 0 || got.CurrentMonthPayments != 0 {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	if got.PaymentMethodsDistribution == nil || len(got.PaymentMethodsDistribution) != 0 {
		t.Fatalf("expected empty distribution, got %#v", got.PaymentMethodsDistribution)
	}
	if got.MonthlyPayments == nil || len(got.MonthlyPayments) != 0 {
		t.Fatalf("expected empty monthly payments, got %#v", got.MonthlyPayments)
	}
}
