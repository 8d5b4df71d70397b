package policy

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMaxEligible_FeedsSackBand(t *testing.T) {
	e := NewEligibility(NewTable())
	cases := []struct {
		capital string
		want    int64
	}{
		{"0", 0},
		{"5999.99", 0},
		{"6000", 0}, // floor((6000-6000)/14000*15) = 0
		{"13000", 7},
		{"19999.99", 14},
		{"20000", 15},
		{"1000000", 15},
	}
	for _, c := range cases {
		got, err := e.MaxEligible(TypeFeeds, dec(c.capital))
		if err != nil {
			t.Fatalf("MaxEligible(feeds, %s): %v", c.capital, err)
		}
		if got.IntPart() != c.want || !got.Equal(got.Floor()) {
			t.Errorf("feeds capital %s: sacks = %s, want %d", c.capital, got, c.want)
		}
	}
}

func TestMaxEligible_RiceSackBand(t *testing.T) {
	e := NewEligibility(NewTable())
	cases := []struct {
		capital string
		want    int64
	}{
		{"0", 2},
		{"5999", 2},
		{"6000", 4},
		{"19999", 4},
		{"20000", 30},
	}
	for _, c := range cases {
		got, err := e.MaxEligible(TypeRice, dec(c.capital))
		if err != nil {
			t.Fatalf("MaxEligible(rice, %s): %v", c.capital, err)
		}
		if got.IntPart() != c.want {
			t.Errorf("rice capital %s: sacks = %s, want %d", c.capital, got, c.want)
		}
	}
}

func TestMaxEligible_NegativeCapitalFailsClosed(t *testing.T) {
	e := NewEligibility(NewTable())
	for _, lt := range []LoanType{TypeFeeds, TypeRice, TypeBackToBack} {
		got, err := e.MaxEligible(lt, dec("-1"))
		if err != nil {
			t.Fatalf("MaxEligible(%s, -1): %v", lt, err)
		}
		if !got.IsZero() {
			t.Errorf("%s with negative capital: eligibility = %s, want 0", lt, got)
		}
	}
}

func TestMaxEligible_FixedCaps(t *testing.T) {
	e := NewEligibility(NewTable())
	cases := []struct {
		lt   LoanType
		want string
	}{
		{TypeEmergency, "30000"},
		{TypeMarketing, "75000"},
		{TypeLivelihood, "100000"},
	}
	for _, c := range cases {
		// Cap is independent of share capital.
		for _, capital := range []string{"0", "5000", "900000"} {
			got, err := e.MaxEligible(c.lt, dec(capital))
			if err != nil {
				t.Fatalf("MaxEligible(%s, %s): %v", c.lt, capital, err)
			}
			if !got.Equal(dec(c.want)) {
				t.Errorf("%s capital %s: cap = %s, want %s", c.lt, capital, got, c.want)
			}
		}
	}
}

func TestMaxEligible_PercentOfShareCapital(t *testing.T) {
	e := NewEligibility(NewTable())
	got, err := e.MaxEligible(TypeBackToBack, dec("45678.55"))
	if err != nil {
		t.Fatalf("MaxEligible: %v", err)
	}
	if !got.Equal(dec("45678.55")) {
		t.Errorf("backToBack cap = %s, want 45678.55", got)
	}
}

func TestMaxEligible_NoneRuleReturnsZeroCap(t *testing.T) {
	e := NewEligibility(NewTable())
	got, err := e.MaxEligible(TypeHousing, dec("10000"))
	if err != nil {
		t.Fatalf("MaxEligible: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("housing cap = %s, want 0 (uncapped)", got)
	}
}

func TestMaxEligible_UnknownType(t *testing.T) {
	e := NewEligibility(NewTable())
	if _, err := e.MaxEligible("balloon", dec("1")); !errors.Is(err, ErrUnknownLoanType) {
		t.Fatalf("err = %v, want ErrUnknownLoanType", err)
	}
}
