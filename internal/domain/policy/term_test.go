package policy

import (
	"errors"
	"testing"
)

func TestResolve_VariableBands(t *testing.T) {
	r := NewTermResolver(NewTable())
	cases := []struct {
		principal string
		want      int
	}{
		{"6000", 6},
		{"10000", 6},
		{"10001", 12},
		{"50000", 12},
		{"50001", 24},
		{"100000", 24},
		{"100001", 36},
		{"500000", 36},
	}
	for _, lt := range []LoanType{TypeRegular, TypeBackToBack} {
		for _, c := range cases {
			got, err := r.Resolve(lt, dec(c.principal), 0)
			if err != nil {
				t.Fatalf("Resolve(%s, %s): %v", lt, c.principal, err)
			}
			if got != c.want {
				t.Errorf("Resolve(%s, %s) = %d, want %d", lt, c.principal, got, c.want)
			}
		}
	}
}

func TestResolve_BelowBandMinimum(t *testing.T) {
	r := NewTermResolver(NewTable())
	_, err := r.Resolve(TypeRegular, dec("5000"), 0)
	if !errors.Is(err, ErrTermUndetermined) {
		t.Fatalf("err = %v, want ErrTermUndetermined", err)
	}
}

func TestResolve_FixedCommodityTerm(t *testing.T) {
	r := NewTermResolver(NewTable())
	for _, lt := range []LoanType{TypeFeeds, TypeRice} {
		// Requested term is ignored for fixed-term types.
		got, err := r.Resolve(lt, dec("0"), 99)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", lt, err)
		}
		if got != 1 {
			t.Errorf("Resolve(%s) = %d, want 1", lt, got)
		}
	}
}

func TestResolve_MemberSelectedTerm(t *testing.T) {
	r := NewTermResolver(NewTable())
	cases := []struct {
		lt      LoanType
		months  int
		wantErr bool
	}{
		{TypeMarketing, 6, false},
		{TypeMarketing, 12, false},
		{TypeMarketing, 13, true},
		{TypeMarketing, 0, true},
		{TypeMarketing, -3, true},
		{TypeCar, 60, false},
		{TypeCar, 61, true},
		{TypeHousing, 84, false},
		{TypeHousing, 85, true},
		{TypeMotorcycle, 36, false},
		{TypeMotorcycle, 37, true},
		{TypeMemorialLot, 60, false},
	}
	for _, c := range cases {
		got, err := r.Resolve(c.lt, dec("20000"), c.months)
		if c.wantErr {
			if !errors.Is(err, ErrTermOutOfRange) {
				t.Errorf("Resolve(%s, %d): err = %v, want ErrTermOutOfRange", c.lt, c.months, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Resolve(%s, %d): %v", c.lt, c.months, err)
		}
		if got != c.months {
			t.Errorf("Resolve(%s, %d) = %d", c.lt, c.months, got)
		}
	}
}

func TestResolve_UnknownType(t *testing.T) {
	r := NewTermResolver(NewTable())
	if _, err := r.Resolve("balloon", dec("10000"), 6); !errors.Is(err, ErrUnknownLoanType) {
		t.Fatalf("err = %v, want ErrUnknownLoanType", err)
	}
}
