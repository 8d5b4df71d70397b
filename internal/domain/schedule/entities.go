package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Installment is one row of an amortization schedule. AmortizationAmount is
// the principal share for the period; RunningBalance is the principal left
// after it is paid.
type Installment struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	QuoteID string `gorm:"size:32;uniqueIndex:ux_installments_quote_seq,priority:1" json:"quote_id"`
	// Sequence is 1-based.
	Sequence int       `gorm:"uniqueIndex:ux_installments_quote_seq,priority:2" json:"sequence"`
	DueDate  time.Time `gorm:"column:due_date" json:"due_date"`

	AmortizationAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"amortization_amount"`
	RunningBalance     decimal.Decimal `gorm:"type:decimal(18,2)" json:"running_balance"`
	Status             Status          `gorm:"size:16;default:'unpaid'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Installment) TableName() string { return "installments" }

// Schedule is the ordered installment sequence for one quote. Immutable once
// generated; corrections regenerate a new schedule.
type Schedule struct {
	QuoteID      string        `json:"quote_id"`
	Installments []Installment `json:"installments"`
}
