package repayment

import (
	"context"

	domainLoan "loan-tracker/internal/domain/loan"
	domainRepayment "loan-tracker/internal/domain/repayment"
	"loan-tracker/internal/domain/user"
	ucLoan "loan-tracker/internal/usecase/loan"
	"loan-tracker/pkg/id"
)

type Usecase struct {
	repayments domainRepayment.Repository
	loans      domainLoan.Repository
	users      user.Repository
}

func NewUsecase(repayments domainRepayment.Repository, loans domainLoan.Repository, users user.Repository) *Usecase {
	return &Usecase{repayments: repayments, loans: loans, users: users}
}

// Record stores a repayment. The loan is not looked up first.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*RepaymentDTO, error) {
	loanRef, _ := id.Canonical(in.LoanID)
	payer, _ := id.Canonical(in.UserID)

	r, err := domainRepayment.New(id.NewID32(), loanRef, payer, in.AmountPaid)
	if err != nil {
		return nil, err
	}
	if err := u.repayments.Create(ctx, r); err != nil {
		return nil, err
	}
	dto := toDTO(r)
	return &dto, nil
}

// List returns every repayment with its loan and payer attached.
func (u *Usecase) List(ctx context.Context) ([]RepaymentDetailDTO, error) {
	rows, err := u.repayments.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []RepaymentDetailDTO{}, nil
	}

	loanIDs := make([]string, 0, len(rows))
	payers := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		payers = append(payers, r.UserID)
		if _, ok := seen[r.LoanID]; !ok {
			seen[r.LoanID] = struct{}{}
			loanIDs = append(loanIDs, r.LoanID)
		}
	}

	loans, err := u.loans.GetByIDs(ctx, loanIDs)
	if err != nil {
		return nil, err
	}
	loanByID := make(map[string]*domainLoan.Application, len(loans))
	for i := range loans {
		loanByID[loans[i].ID] = &loans[i]
	}

	resolve, err := user.Lookup(ctx, u.users, payers)
	if err != nil {
		return nil, err
	}

	out := make([]RepaymentDetailDTO, 0, len(rows))
	for i := range rows {
		d := RepaymentDetailDTO{RepaymentDTO: toDTO(&rows[i])}
		if l, ok := loanByID[rows[i].LoanID]; ok {
			ld := ucLoan.ToLoanDTO(l)
			d.Loan = &ld
		}
		if usr, ok := resolve(rows[i].UserID); ok {
			d.User = ucLoan.ToUserDTO(usr)
		}
		out = append(out, d)
	}
	return out, nil
}

func toDTO(r *domainRepayment.Repayment) RepaymentDTO {
	return RepaymentDTO{
		ID:         r.ID,
		LoanID:     r.LoanID,
		UserID:     r.UserID,
		AmountPaid: r.AmountPaid,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
