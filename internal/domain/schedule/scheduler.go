package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"sibbap-loan-engine/internal/domain/policy"
	"sibbap-loan-engine/internal/domain/quote"
)

// Scheduler generates amortization schedules from finalized quotes.
// Stateless and deterministic: the same quote and start date always produce
// the same schedule.
type Scheduler struct{}

func NewScheduler() *Scheduler { return &Scheduler{} }

// Generate produces the installment sequence for a quote.
//
// The per-period amortization is principal/termMonths rounded half-up to two
// decimals; the last installment absorbs the rounding remainder so the
// amortization amounts sum to the principal exactly and the running balance
// ends at exactly zero. Due dates advance by calendar month from startDate,
// except the single-period commodity term which falls due 30 days after
// startDate. Every installment starts out unpaid; payment and overdue
// transitions belong to the repayment processor, not to generation.
func (s *Scheduler) Generate(q *quote.LoanQuote, startDate time.Time) (*Schedule, error) {
	n := q.TermMonths
	if n < 1 {
		return nil, policy.ErrInvalidTerm
	}

	base := q.Principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	commodity := policy.LoanType(q.LoanType).Commodity()

	rows := make([]Installment, 0, n)
	paid := decimal.Zero
	for i := 1; i <= n; i++ {
		amount := base
		if i == n {
			amount = q.Principal.Sub(paid)
		}
		paid = paid.Add(amount)

		due := startDate.AddDate(0, i, 0)
		if commodity && n == 1 {
			due = startDate.AddDate(0, 0, 30)
		}

		rows = append(rows, Installment{
			QuoteID:            q.QuoteID,
			Sequence:           i,
			DueDate:            due,
			AmortizationAmount: amount,
			RunningBalance:     q.Principal.Sub(paid),
			Status:             StatusUnpaid,
		})
	}

	return &Schedule{QuoteID: q.QuoteID, Installments: rows}, nil
}
