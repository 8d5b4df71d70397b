package policy

import "fmt"

// LoanType identifies one of the cooperative's loan products.
type LoanType string

const (
	TypeFeeds          LoanType = "feeds"
	TypeRice           LoanType = "rice"
	TypeMarketing      LoanType = "marketing"
	TypeBackToBack     LoanType = "backToBack"
	TypeRegular        LoanType = "regular"
	TypeLivelihood     LoanType = "livelihood"
	TypeEducational    LoanType = "educational"
	TypeEmergency      LoanType = "emergency"
	TypeQuickCash      LoanType = "quickCash"
	TypeCar            LoanType = "car"
	TypeHousing        LoanType = "housing"
	TypeMotorcycle     LoanType = "motorcycle"
	TypeMemorialLot    LoanType = "memorialLot"
	TypeIntermentLot   LoanType = "intermentLot"
	TypeTravel         LoanType = "travel"
	TypeOFW            LoanType = "ofw"
	TypeSavings        LoanType = "savings"
	TypeHealth         LoanType = "health"
	TypeSpecial        LoanType = "special"
	TypeReconstruction LoanType = "reconstruction"
)

// All returns every registered loan type in declaration order.
func All() []LoanType {
	return []LoanType{
		TypeFeeds, TypeRice, TypeMarketing, TypeBackToBack, TypeRegular,
		TypeLivelihood, TypeEducational, TypeEmergency, TypeQuickCash,
		TypeCar, TypeHousing, TypeMotorcycle, TypeMemorialLot,
		TypeIntermentLot, TypeTravel, TypeOFW, TypeSavings, TypeHealth,
		TypeSpecial, TypeReconstruction,
	}
}

// Commodity reports whether the loan principal is denominated in sacks
// rather than currency. Commodity loans run a single 30-day term.
func (t LoanType) Commodity() bool { return t == TypeFeeds || t == TypeRice }

// Parse validates a raw loan-type string coming from the intake layer.
func Parse(s string) (LoanType, error) {
	t := LoanType(s)
	for _, known := range All() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLoanType, s)
}
