package repayment

import (
	"strings"
	"time"

	"loan-tracker/internal/domain/apperr"
)

// Repayment is a payment recorded against a loan by a user. It is never
// modified after creation.
type Repayment struct {
	ID         string    `gorm:"column:id;primaryKey;size:32" json:"id"`
	LoanID     string    `gorm:"column:loan_id;size:64;not null;index" json:"loanId"`
	UserID     string    `gorm:"column:user_id;size:64;not null;index" json:"userId"`
	AmountPaid float64   `gorm:"column:amount_paid;type:decimal(18,2);not null" json:"amountPaid"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Repayment) TableName() string { return "repayments" }

// New validates the three required inputs and builds a Repayment.
func New(id, loanID, userID string, amountPaid float64) (*Repayment, error) {
	r := &Repayment{
		ID:         id,
		LoanID:     strings.TrimSpace(loanID),
		UserID:     strings.TrimSpace(userID),
		AmountPaid: amountPaid,
	}
	if r.LoanID == "" || r.UserID == "" || r.AmountPaid == 0 {
		return nil, apperr.Invalid("All fields are required: loanId, userId, amountPaid")
	}
	if r.AmountPaid < 0 {
		return nil, &apperr.ValidationError{
			Message: "invalid repayment",
			Fields:  []apperr.FieldError{{Field: "amountPaid", Message: "must be greater than 0"}},
		}
	}
	return r, nil
}
