package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment methods accepted by the centre.
const (
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
	MethodCard         = "card"
	MethodOnline       = "online"
	MethodCheque       = "cheque"
	MethodOther        = "other"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index" json:"studentId"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:20;not null" json:"paymentMethod"`
	PaymentDate   time.Time `gorm:"not null" json:"paymentDate"`
	Month         int       `gorm:"not null;index:idx_payments_month_year" json:"month"`
	Year          int       `gorm:"not null;index:idx_payments_month_year" json:"year"`
	Description   string    `gorm:"type:text" json:"description"`
	ReceiptNumber *string   `gorm:"size:20;unique" json:"receiptNumber"`

	Student Student `gorm:"foreignkey:StudentID" json:"student"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	p.DeriveMonthYear()
	return nil
}

// DeriveMonthYear keeps the denormalized month/year columns consistent
// with the payment date.
func (p *Payment) DeriveMonthYear() {
	p.Month = int(p.PaymentDate.Month())
	p.Year = p.PaymentDate.Year()
}
