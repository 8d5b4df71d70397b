package http

import (
	"errors"
	"testing"
)

func TestLoanTypeValidation(t *testing.T) {
	type P struct {
		LoanType string `validate:"loantype"`
	}
	cv := NewValidator()

	for _, s := range []string{"feeds", "rice", "marketing", "backToBack", "memorialLot", "reconstruction"} {
		if err := cv.Validate(P{LoanType: s}); err != nil {
			t.Fatalf("expected valid loan type %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",           // empty
		"Marketing",  // wrong case
		"backtoback", // wrong case
		"payday",     // not a product
	} {
		err := cv.Validate(P{LoanType: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoanType", "registered loan type") {
			t.Fatalf("expected loantype message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 40000, 1.29, 2.00, 0.9, 12345.67} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999, 40000.001} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string  `validate:"required"`
		Min  int     `validate:"gte=10"`
		Max  int     `validate:"lte=5"`
		Cap  float64 `validate:"dec2,gte=0"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name: "",     // required
		Min:  9,      // gte=10
		Max:  6,      // lte=5
		Cap:  -1.234, // dec2 triggers before gte
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Cap", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Cap: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
