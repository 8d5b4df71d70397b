package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Principal bands for backToBack/regular loans: amount in, months out.
// Principal below the first band has no defined term.
var termBands = []struct {
	upTo   decimal.Decimal
	months int
}{
	{decimal.NewFromInt(10000), 6},
	{decimal.NewFromInt(50000), 12},
	{decimal.NewFromInt(100000), 24},
}

const bandMaxMonths = 36

var bandMinPrincipal = decimal.NewFromInt(6000)

// TermResolver resolves the repayment term in months for a loan.
type TermResolver struct {
	table *Table
}

func NewTermResolver(t *Table) *TermResolver { return &TermResolver{table: t} }

// Resolve determines the term for the given type and principal.
//
// Fixed-term types ignore both inputs and return the policy value. Banded
// types derive the term from the principal alone. Every other type takes the
// member-selected requestedMonths, rejected outside [1, MaxTermMonths].
func (r *TermResolver) Resolve(lt LoanType, principal decimal.Decimal, requestedMonths int) (int, error) {
	p, err := r.table.Lookup(lt)
	if err != nil {
		return 0, err
	}

	if p.FixedTermMonths > 0 {
		return p.FixedTermMonths, nil
	}

	if p.Banded {
		if principal.LessThan(bandMinPrincipal) {
			return 0, fmt.Errorf("%w: principal %s below minimum %s", ErrTermUndetermined, principal, bandMinPrincipal)
		}
		for _, b := range termBands {
			if principal.LessThanOrEqual(b.upTo) {
				return b.months, nil
			}
		}
		return bandMaxMonths, nil
	}

	if requestedMonths < 1 || requestedMonths > p.MaxTermMonths {
		return 0, fmt.Errorf("%w: %d months for %s (max %d)",
			ErrTermOutOfRange, requestedMonths, lt, p.MaxTermMonths)
	}
	return requestedMonths, nil
}
