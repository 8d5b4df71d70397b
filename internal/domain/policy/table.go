package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Table is the read-only rate policy table. Built once at startup, safe for
// concurrent lookup without locking.
type Table struct {
	policies map[LoanType]LoanTypePolicy
}

// Override carries optional per-type adjustments loaded from the policy
// file. Nil fields leave the built-in default untouched.
type Override struct {
	InterestRatePercent   *decimal.Decimal
	ServiceFeeRatePercent *decimal.Decimal
	UnitPrice             *decimal.Decimal
	MaxTermMonths         *int
}

func pct(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func stdAux() map[string]decimal.Decimal {
	// 1% additional-savings deposit and 1% share-capital build-up, both
	// deducted from proceeds at release.
	one := decimal.NewFromInt(1)
	return map[string]decimal.Decimal{
		AuxSavingsDeposit:      one,
		AuxShareCapitalBuildUp: one,
	}
}

func defaults() []LoanTypePolicy {
	return []LoanTypePolicy{
		// Commodity loans: sack-banded, single 30-day term, no documented
		// interest or service fee of their own.
		{
			Type: TypeFeeds, Rule: RuleSackBand,
			FixedTermMonths: 1, FixedTermDays: 30,
			UnitPrice: pct("1750.00"),
		},
		{
			Type: TypeRice, Rule: RuleSackBand,
			FixedTermMonths: 1, FixedTermDays: 30,
			UnitPrice: pct("2500.00"),
		},

		{
			Type: TypeMarketing, Rule: RuleFixedCap,
			InterestRatePercent: pct("3.5"), ServiceFeeRatePercent: pct("5"),
			MaxPrincipal: pct("75000"), MaxTermMonths: 12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeBackToBack, Rule: RulePercentOfShareCapital,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("3"),
			PercentOfCapital: pct("100"), Banded: true,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeRegular, Rule: RuleNone,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("3"),
			Banded:               true,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeLivelihood, Rule: RuleFixedCap,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("3"),
			MaxPrincipal: pct("100000"), MaxTermMonths: 12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeEducational, Rule: RuleNone,
			InterestRatePercent: pct("1.75"), ServiceFeeRatePercent: pct("5"),
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeEmergency, Rule: RuleFixedCap,
			InterestRatePercent: pct("1.75"), ServiceFeeRatePercent: pct("5"),
			MaxPrincipal: pct("30000"), MaxTermMonths: 12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeQuickCash, Rule: RuleNone,
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeCar, Rule: RuleNone,
			InterestRatePercent: pct("1.75"), ServiceFeeRatePercent: pct("1.2"),
			MaxTermMonths:        60,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeHousing, Rule: RuleNone,
			InterestRatePercent: pct("1.75"), ServiceFeeRatePercent: pct("1.2"),
			MaxTermMonths:        84,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeMotorcycle, Rule: RuleNone,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("5"),
			MaxTermMonths:        36,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeMemorialLot, Rule: RuleNone,
			InterestRatePercent: pct("1.25"), ServiceFeeRatePercent: pct("2"),
			MaxTermMonths:        60,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeIntermentLot, Rule: RuleNone,
			MaxTermMonths:        60,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeTravel, Rule: RuleNone,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("5"),
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeOFW, Rule: RuleNone,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("5"),
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeSavings, Rule: RuleNone,
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeHealth, Rule: RuleNone,
			InterestRatePercent: pct("1.5"), ServiceFeeRatePercent: pct("1.2"),
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeSpecial, Rule: RuleNone,
			InterestRatePercent: pct("2.5"), ServiceFeeRatePercent: pct("3"),
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
		{
			Type: TypeReconstruction, Rule: RuleNone,
			InterestRatePercent: pct("2"), ServiceFeeRatePercent: pct("3"),
			MaxTermMonths:        12,
			AuxiliaryRatePercent: stdAux(),
		},
	}
}

// NewTable builds the table with the built-in cooperative policy defaults.
func NewTable() *Table {
	t, _ := NewTableWith(nil)
	return t
}

// NewTableWith builds the table and applies per-type overrides on top of the
// defaults. Override keys must name registered loan types.
func NewTableWith(overrides map[LoanType]Override) (*Table, error) {
	policies := make(map[LoanType]LoanTypePolicy, 20)
	for _, p := range defaults() {
		policies[p.Type] = p
	}
	for lt, ov := range overrides {
		p, ok := policies[lt]
		if !ok {
			return nil, fmt.Errorf("%w: override for %q", ErrUnknownLoanType, lt)
		}
		if ov.InterestRatePercent != nil {
			p.InterestRatePercent = *ov.InterestRatePercent
		}
		if ov.ServiceFeeRatePercent != nil {
			p.ServiceFeeRatePercent = *ov.ServiceFeeRatePercent
		}
		if ov.UnitPrice != nil {
			p.UnitPrice = *ov.UnitPrice
		}
		if ov.MaxTermMonths != nil {
			p.MaxTermMonths = *ov.MaxTermMonths
		}
		policies[lt] = p
	}
	return &Table{policies: policies}, nil
}

// Lookup returns the policy for a loan type.
func (t *Table) Lookup(lt LoanType) (LoanTypePolicy, error) {
	p, ok := t.policies[lt]
	if !ok {
		return LoanTypePolicy{}, fmt.Errorf("%w: %q", ErrUnknownLoanType, lt)
	}
	return p, nil
}
