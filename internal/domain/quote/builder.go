package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sibbap-loan-engine/internal/domain/policy"
)

var hundred = decimal.NewFromInt(100)

// Builder turns a raw application request into a validated LoanQuote.
// Pure and deterministic: identical requests produce identical quotes, so
// callers may cache or retry freely. Safe for concurrent use.
type Builder struct {
	table *policy.Table
	elig  *policy.Eligibility
	terms *policy.TermResolver
}

func NewBuilder(t *policy.Table) *Builder {
	return &Builder{
		table: t,
		elig:  policy.NewEligibility(t),
		terms: policy.NewTermResolver(t),
	}
}

// Build resolves policy, clamps the request to eligibility, resolves the
// term, and computes interest, service fee, auxiliary fees and net proceeds.
//
// A request above the eligible maximum is capped, not rejected; the granted
// cap is recorded in MaxEligiblePrincipal so callers wanting strict
// rejection can compare against the original request. Only a request against
// zero eligibility fails with ErrEligibilityExceeded.
//
// Interest is computed on principal but collected over the term; it is not
// deducted from net proceeds. Service and auxiliary fees are.
func (b *Builder) Build(req Request) (*LoanQuote, error) {
	lt, err := policy.Parse(req.LoanType)
	if err != nil {
		return nil, err
	}
	pol, err := b.table.Lookup(lt)
	if err != nil {
		return nil, err
	}

	var (
		principal   decimal.Decimal
		units       int64
		maxEligible decimal.Decimal
	)

	if lt.Commodity() {
		principal, units, maxEligible, err = b.resolveCommodity(lt, pol, req)
	} else {
		principal, maxEligible, err = b.resolvePrincipal(lt, pol, req)
	}
	if err != nil {
		return nil, err
	}

	term, err := b.terms.Resolve(lt, principal, req.TermMonths)
	if err != nil {
		return nil, err
	}

	interest := principal.Mul(pol.InterestRatePercent).Div(hundred).Round(2)
	serviceFee := principal.Mul(pol.ServiceFeeRatePercent).Div(hundred).Round(2)

	aux := make(AuxFees, len(pol.AuxiliaryRatePercent))
	for name, rate := range pol.AuxiliaryRatePercent {
		aux[name] = principal.Mul(rate).Div(hundred).Round(2)
	}

	net := principal.Sub(serviceFee).Sub(aux.Sum())

	return &LoanQuote{
		LoanType:             string(lt),
		Principal:            principal,
		Units:                units,
		TermMonths:           term,
		InterestAmount:       interest,
		ServiceFeeAmount:     serviceFee,
		AuxiliaryFees:        aux,
		NetProceeds:          net,
		MaxEligiblePrincipal: maxEligible,
		ShareCapital:         req.ShareCapital.Round(2),
		Purpose:              req.Purpose,
		CoMaker:              req.CoMaker,
		CoBorrower:           req.CoBorrower,
	}, nil
}

// resolveCommodity converts a requested sack count into a monetary principal
// at the policy unit price, clamped to the sack-band eligibility.
func (b *Builder) resolveCommodity(lt policy.LoanType, pol policy.LoanTypePolicy, req Request) (principal decimal.Decimal, units int64, maxEligible decimal.Decimal, err error) {
	if req.RequestedUnits <= 0 {
		return decimal.Zero, 0, decimal.Zero,
			fmt.Errorf("%w: %s loan requires a positive sack count", policy.ErrInvalidRequest, lt)
	}
	maxUnits, err := b.elig.MaxEligible(lt, req.ShareCapital)
	if err != nil {
		return decimal.Zero, 0, decimal.Zero, err
	}
	if maxUnits.IsZero() {
		return decimal.Zero, 0, decimal.Zero,
			fmt.Errorf("%w: share capital %s grants no %s sacks", policy.ErrEligibilityExceeded, req.ShareCapital, lt)
	}
	units = req.RequestedUnits
	if units > maxUnits.IntPart() {
		units = maxUnits.IntPart()
	}
	principal = pol.UnitPrice.Mul(decimal.NewFromInt(units)).Round(2)
	maxEligible = pol.UnitPrice.Mul(maxUnits).Round(2)
	return principal, units, maxEligible, nil
}

// resolvePrincipal clamps a requested peso principal to the type's
// eligibility ceiling and bounds.
func (b *Builder) resolvePrincipal(lt policy.LoanType, pol policy.LoanTypePolicy, req Request) (principal, maxEligible decimal.Decimal, err error) {
	if !req.RequestedPrincipal.IsPositive() {
		return decimal.Zero, decimal.Zero,
			fmt.Errorf("%w: %s loan requires a positive principal", policy.ErrInvalidRequest, lt)
	}
	principal = req.RequestedPrincipal.Round(2)

	ceiling, err := b.elig.MaxEligible(lt, req.ShareCapital)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	uncapped := pol.Rule == policy.RuleNone && ceiling.IsZero()
	if uncapped {
		// No programmatic ceiling: the granted amount is its own maximum.
		maxEligible = principal
	} else {
		if ceiling.IsZero() {
			return decimal.Zero, decimal.Zero,
				fmt.Errorf("%w: share capital %s grants no %s eligibility", policy.ErrEligibilityExceeded, req.ShareCapital, lt)
		}
		if principal.GreaterThan(ceiling) {
			principal = ceiling
		}
		maxEligible = ceiling
	}

	if pol.MinPrincipal.IsPositive() && principal.LessThan(pol.MinPrincipal) {
		return decimal.Zero, decimal.Zero,
			fmt.Errorf("%w: principal %s below minimum %s for %s", policy.ErrInvalidRequest, principal, pol.MinPrincipal, lt)
	}
	return principal, maxEligible, nil
}
