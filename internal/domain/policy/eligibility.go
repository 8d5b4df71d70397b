package policy

import "github.com/shopspring/decimal"

// Feeds sack band: below the floor no sacks, at the ceiling the full count,
// linear in between. Rice uses the coarse three-tier band the cooperative
// actually runs; its gap between the tiers is preserved as documented.
var (
	sackBandFloor   = decimal.NewFromInt(6000)
	sackBandCeiling = decimal.NewFromInt(20000)

	feedsMaxSacks  = decimal.NewFromInt(15)
	riceMaxSacks   = decimal.NewFromInt(30)
	riceMidSacks   = decimal.NewFromInt(4)
	riceFloorSacks = decimal.NewFromInt(2)
)

// Eligibility computes the maximum a member may borrow for a loan type.
type Eligibility struct {
	table *Table
}

func NewEligibility(t *Table) *Eligibility { return &Eligibility{table: t} }

// MaxEligible returns the borrowing ceiling for the type and share capital.
// For commodity types the result is a whole sack count, otherwise a peso
// amount. For RuleNone types it returns the MaxPrincipal bound, zero meaning
// uncapped. Negative share capital fails closed to zero eligibility; hard
// input validation belongs to the caller.
func (e *Eligibility) MaxEligible(lt LoanType, shareCapital decimal.Decimal) (decimal.Decimal, error) {
	p, err := e.table.Lookup(lt)
	if err != nil {
		return decimal.Zero, err
	}
	if shareCapital.IsNegative() {
		return decimal.Zero, nil
	}

	switch p.Rule {
	case RuleSackBand:
		return maxSacks(lt, shareCapital), nil
	case RuleFixedCap:
		return p.MaxPrincipal, nil
	case RulePercentOfShareCapital:
		return shareCapital.Mul(p.PercentOfCapital).Div(decimal.NewFromInt(100)).Round(2), nil
	default:
		return p.MaxPrincipal, nil
	}
}

func maxSacks(lt LoanType, capital decimal.Decimal) decimal.Decimal {
	switch lt {
	case TypeFeeds:
		switch {
		case capital.LessThan(sackBandFloor):
			return decimal.Zero
		case capital.GreaterThanOrEqual(sackBandCeiling):
			return feedsMaxSacks
		default:
			span := sackBandCeiling.Sub(sackBandFloor)
			return capital.Sub(sackBandFloor).Div(span).Mul(feedsMaxSacks).Floor()
		}
	case TypeRice:
		switch {
		case capital.GreaterThanOrEqual(sackBandCeiling):
			return riceMaxSacks
		case capital.GreaterThanOrEqual(sackBandFloor):
			return riceMidSacks
		default:
			return riceFloorSacks
		}
	}
	return decimal.Zero
}
