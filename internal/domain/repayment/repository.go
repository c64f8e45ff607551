package repayment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Repayment) error

	// List returns every repayment, newest first.
	List(ctx context.Context) ([]Repayment, error)
}
