package policy

import "github.com/shopspring/decimal"

// EligibilityRule selects the formula used to compute the maximum a member
// may borrow for a given loan type.
type EligibilityRule string

const (
	// RuleSackBand converts share capital into a commodity sack count using
	// type-specific bands (feeds, rice).
	RuleSackBand EligibilityRule = "sackBand"
	// RuleFixedCap caps the principal at a documented ceiling regardless of
	// share capital (emergency, marketing, livelihood).
	RuleFixedCap EligibilityRule = "fixedCap"
	// RulePercentOfShareCapital caps the principal at a percentage of the
	// member's share capital (backToBack).
	RulePercentOfShareCapital EligibilityRule = "percentOfShareCapital"
	// RuleNone applies no programmatic cap beyond the optional
	// min/max principal bounds.
	RuleNone EligibilityRule = "none"
)

// Auxiliary fee names used across the policy table. Both are deducted from
// net proceeds at disbursement, alongside the service fee.
const (
	AuxSavingsDeposit      = "savingsDeposit"
	AuxShareCapitalBuildUp = "shareCapitalBuildUp"
)

// LoanTypePolicy is the immutable per-type rate and rule record. Instances
// are built once at table construction and never mutated afterwards.
type LoanTypePolicy struct {
	Type LoanType

	// Rates are percentages of principal (e.g. 3.5 means 3.5%). Types with
	// no documented rate carry zero and rely on the caller to supply one.
	InterestRatePercent   decimal.Decimal
	ServiceFeeRatePercent decimal.Decimal
	AuxiliaryRatePercent  map[string]decimal.Decimal

	Rule EligibilityRule
	// PercentOfCapital applies when Rule is RulePercentOfShareCapital.
	PercentOfCapital decimal.Decimal

	// MinPrincipal/MaxPrincipal are optional bounds; zero means unset.
	// For RuleFixedCap, MaxPrincipal holds the documented ceiling.
	MinPrincipal decimal.Decimal
	MaxPrincipal decimal.Decimal

	// FixedTermMonths is set for types whose term is not chosen by the
	// member or banded by principal (feeds/rice: one period). Zero when the
	// term is variable.
	FixedTermMonths int
	// FixedTermDays, when set with FixedTermMonths == 1, makes the single
	// installment fall due this many days after the start date instead of
	// one calendar month.
	FixedTermDays int
	// MaxTermMonths bounds the caller-selected term for variable types that
	// are not principal-banded. Zero when the type is banded or fixed.
	MaxTermMonths int
	// Banded marks types whose term is derived from the principal amount.
	Banded bool

	// UnitPrice is the peso price of one sack for commodity types; it turns
	// a sack count into a monetary principal.
	UnitPrice decimal.Decimal
}
