package repayment

import (
	"time"

	ucLoan "loan-tracker/internal/usecase/loan"
)

type RecordInput struct {
	LoanID     string
	UserID     string
	AmountPaid float64
}

type RepaymentDTO struct {
	ID         string    `json:"id"`
	LoanID     string    `json:"loanId"`
	UserID     string    `json:"userId"`
	AmountPaid float64   `json:"amountPaid"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RepaymentDetailDTO is a repayment with its loan and payer resolved; either
// stays null when the reference no longer resolves.
type RepaymentDetailDTO struct {
	RepaymentDTO
	Loan *ucLoan.LoanDTO `json:"loan"`
	User *ucLoan.UserDTO `json:"user"`
}
