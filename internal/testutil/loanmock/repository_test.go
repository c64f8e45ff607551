package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "loan-tracker/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	a := &domain.Application{ID: "LN-1"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Application) error {
			called = true
			if gotCtx != ctx || got != a {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, a); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	if err := (&Repo{}).Create(ctx, a); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	want := &domain.Application{ID: "LN-2", Status: domain.StatusVerified}

	m := &Repo{
		UpdateStatusFn: func(_ context.Context, id string, s domain.Status) (*domain.Application, error) {
			if id != "LN-2" || s != domain.StatusVerified {
				t.Fatalf("UpdateStatus args mismatch: %s %s", id, s)
			}
			return want, nil
		},
	}
	got, err := m.UpdateStatus(ctx, "LN-2", domain.StatusVerified)
	if err != nil || got != want {
		t.Fatalf("UpdateStatus: got %+v, %v", got, err)
	}
}

func TestRepo_DefaultsAreCanceled(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if _, err := m.GetByID(ctx, "x"); err != context.Canceled {
		t.Fatalf("GetByID default: %v", err)
	}
	if _, err := m.GetByIDs(ctx, []string{"x"}); err != context.Canceled {
		t.Fatalf("GetByIDs default: %v", err)
	}
	if _, err := m.ListByUserIDs(ctx, []string{"u"}); err != context.Canceled {
		t.Fatalf("ListByUserIDs default: %v", err)
	}
	if _, err := m.ListAll(ctx); err != context.Canceled {
		t.Fatalf("ListAll default: %v", err)
	}
	if _, err := m.UpdateStatus(ctx, "x", domain.StatusApproved); err != context.Canceled {
		t.Fatalf("UpdateStatus default: %v", err)
	}
}
