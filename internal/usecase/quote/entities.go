package quote

import (
	"time"

	"github.com/shopspring/decimal"

	quoteDomain "sibbap-loan-engine/internal/domain/quote"
)

type QuoteDTO struct {
	QuoteID    string          `json:"quote_id"`
	LoanType   string          `json:"loan_type"`
	Principal  decimal.Decimal `json:"principal"`
	Units      int64           `json:"units,omitempty"`
	TermMonths int             `json:"term_months"`

	InterestAmount   decimal.Decimal            `json:"interest_amount"`
	ServiceFeeAmount decimal.Decimal            `json:"service_fee_amount"`
	AuxiliaryFees    map[string]decimal.Decimal `json:"auxiliary_fees"`
	NetProceeds      decimal.Decimal            `json:"net_proceeds"`

	MaxEligiblePrincipal decimal.Decimal `json:"max_eligible_principal"`
	CreatedAt            time.Time       `json:"created_at"`
}

func toDTO(q *quoteDomain.LoanQuote) *QuoteDTO {
	return &QuoteDTO{
		QuoteID:              q.QuoteID,
		LoanType:             q.LoanType,
		Principal:            q.Principal,
		Units:                q.Units,
		TermMonths:           q.TermMonths,
		InterestAmount:       q.InterestAmount,
		ServiceFeeAmount:     q.ServiceFeeAmount,
		AuxiliaryFees:        q.AuxiliaryFees,
		NetProceeds:          q.NetProceeds,
		MaxEligiblePrincipal: q.MaxEligiblePrincipal,
		CreatedAt:            q.CreatedAt,
	}
}
