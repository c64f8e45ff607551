package http

import (
	"errors"
	"testing"
)

func TestEmploymentValidation(t *testing.T) {
	type P struct {
		Status string `json:"employmentStatus" validate:"employment"`
	}
	cv := NewValidator()

	for _, s := range []string{"employed", "unemployed", "self-employed"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid, got err: %v", s, err)
		}
	}
	for _, s := range []string{"", "Employed", "retired", "self employed"} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "employmentStatus", "must be one of") {
			t.Fatalf("expected employment message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredUnlessUnemployed(t *testing.T) {
	cv := NewValidator()

	base := applyLoanReq{
		Name:             "Ada",
		Amount:           5000,
		Tenure:           12,
		EmploymentStatus: "unemployed",
		LoanReason:       "school fees",
	}
	if err := cv.Validate(base); err != nil {
		t.Fatalf("unemployed without address should pass: %v", err)
	}

	for _, st := range []string{"employed", "self-employed"} {
		p := base
		p.EmploymentStatus = st
		err := cv.Validate(p)
		if err == nil {
			t.Fatalf("expected address error for %s", st)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "employmentAddress", "is required unless EmploymentStatus is unemployed") {
			t.Fatalf("missing required_unless message: %+v", fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(applyLoanReq{
		Name:             "   ", // notblank
		Amount:           999,   // gte=1000
		EmploymentStatus: "employed",
		LoanReason:       "",
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "name", "must not be blank") {
		t.Fatalf("missing notblank message for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "amount", "greater than or equal to 1000") {
		t.Fatalf("missing gte message for amount: %+v", fe)
	}
	if !containsFieldMsg(fe, "tenure", "is required") {
		t.Fatalf("missing required message for tenure: %+v", fe)
	}
	if !containsFieldMsg(fe, "loanReason", "is required") {
		t.Fatalf("missing required message for loanReason: %+v", fe)
	}

	err = cv.Validate(createRepaymentReq{LoanID: "l", UserID: "u", AmountPaid: -5})
	if !containsFieldMsg(ToFieldErrors(err), "amountPaid", "greater than 0") {
		t.Fatalf("missing gt message for amountPaid: %+v", ToFieldErrors(err))
	}
}

func TestFieldNamesFallBackToStructName(t *testing.T) {
	type P struct {
		Plain string `validate:"required"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{}))
	if !containsFieldMsg(fe, "Plain", "is required") {
		t.Fatalf("expected struct field name, got %+v", fe)
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
