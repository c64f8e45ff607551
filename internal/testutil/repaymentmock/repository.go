package repaymentmock

import (
	"context"

	domain "loan-tracker/internal/domain/repayment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn func(ctx context.Context, r *domain.Repayment) error
	ListFn   func(ctx context.Context) ([]domain.Repayment, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Repayment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
