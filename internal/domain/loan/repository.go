package loan

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	// GetByIDs returns whichever of ids exist, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]Application, error)
	// ListByUserIDs matches any of the stored forms of one user's id, newest created first.
	ListByUserIDs(ctx context.Context, userIDs []string) ([]Application, error)
	// ListAll returns every application, most recently updated first.
	ListAll(ctx context.Context) ([]Application, error)
	// UpdateStatus sets the status of one application and returns the stored row.
	UpdateStatus(ctx context.Context, id string, s Status) (*Application, error)
}
