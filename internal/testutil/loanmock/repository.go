package loanmock

import (
	"context"

	domain "loan-tracker/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads fail with context.Canceled; unset Create succeeds.
type Repo struct {
	CreateFn        func(ctx context.Context, a *domain.Application) error
	GetByIDFn       func(ctx context.Context, id string) (*domain.Application, error)
	GetByIDsFn      func(ctx context.Context, ids []string) ([]domain.Application, error)
	ListByUserIDsFn func(ctx context.Context, userIDs []string) ([]domain.Application, error)
	ListAllFn       func(ctx context.Context) ([]domain.Application, error)
	UpdateStatusFn  func(ctx context.Context, id string, s domain.Status) (*domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Application, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserIDs(ctx context.Context, userIDs []string) ([]domain.Application, error) {
	if m.ListByUserIDsFn != nil {
		return m.ListByUserIDsFn(ctx, userIDs)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, id string, s domain.Status) (*domain.Application, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, s)
	}
	return nil, context.Canceled
}
