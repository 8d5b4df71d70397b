package quote

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AuxFees maps auxiliary fee names to computed amounts. Stored as JSON so the
// set of fees can vary per loan type without schema churn.
type AuxFees map[string]decimal.Decimal

func (f AuxFees) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *AuxFees) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = AuxFees{}
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("auxfees: cannot scan %T", src)
	}
}

// Sum returns the total of all auxiliary fees.
func (f AuxFees) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, amt := range f {
		total = total.Add(amt)
	}
	return total
}

// Request is the raw loan application handed in by the intake layer. All
// borrower attributes arrive here explicitly; the engine reads no ambient
// state. Immutable once built; not persisted by the engine.
type Request struct {
	LoanType           string          `json:"loan_type"`
	RequestedPrincipal decimal.Decimal `json:"requested_principal"`
	RequestedUnits     int64           `json:"requested_units"`
	ShareCapital       decimal.Decimal `json:"share_capital"`
	TermMonths         int             `json:"term_months"`
	Purpose            string          `json:"purpose"`

	// Co-maker/co-borrower details are pass-through; nothing is computed
	// on them.
	CoMaker    string `json:"co_maker"`
	CoBorrower string `json:"co_borrower"`
}

// LoanQuote is the finalized, policy-resolved terms of a loan prior to
// schedule generation. All money amounts are non-negative and rounded
// half-up to 2 decimal places at computation time.
type LoanQuote struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	QuoteID string `gorm:"size:32;uniqueIndex:ux_quotes_quote_id" json:"quote_id"`

	LoanType  string          `gorm:"size:32;index:idx_quotes_loan_type" json:"loan_type"`
	Principal decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	// Units is the granted sack count for commodity loans, zero otherwise.
	Units      int64 `gorm:"column:units" json:"units,omitempty"`
	TermMonths int   `gorm:"column:term_months" json:"term_months"`

	InterestAmount   decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest_amount"`
	ServiceFeeAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"service_fee_amount"`
	AuxiliaryFees    AuxFees         `gorm:"type:json" json:"auxiliary_fees"`
	NetProceeds      decimal.Decimal `gorm:"type:decimal(18,2)" json:"net_proceeds"`

	// MaxEligiblePrincipal records the cap the request was clamped against,
	// kept on the quote for audit.
	MaxEligiblePrincipal decimal.Decimal `gorm:"type:decimal(18,2)" json:"max_eligible_principal"`
	ShareCapital         decimal.Decimal `gorm:"type:decimal(18,2)" json:"share_capital"`

	Purpose    string `gorm:"type:text" json:"purpose"`
	CoMaker    string `gorm:"type:text" json:"co_maker,omitempty"`
	CoBorrower string `gorm:"type:text" json:"co_borrower,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (LoanQuote) TableName() string { return "loan_quotes" }
