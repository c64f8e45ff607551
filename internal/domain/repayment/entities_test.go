package repayment

import (
	"testing"

	"loan-tracker/internal/domain/apperr"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		loanID  string
		userID  string
		amount  float64
		wantErr bool
	}{
		{"ok", "loan-1", "user-1", 250, false},
		{"trims ids", "  loan-1 ", " user-1", 250, false},
		{"missing loan", "", "user-1", 250, true},
		{"blank loan", "   ", "user-1", 250, true},
		{"missing user", "loan-1", "", 250, true},
		{"zero amount", "loan-1", "user-1", 0, true},
		{"negative amount", "loan-1", "user-1", -10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("rp-1", tt.loanID, tt.userID, tt.amount)
			if tt.wantErr {
				if !apperr.IsValidation(err) {
					t.Fatalf("want validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if r.LoanID != "loan-1" || r.UserID != "user-1" || r.AmountPaid != tt.amount {
				t.Fatalf("unexpected repayment: %+v", r)
			}
		})
	}
}
