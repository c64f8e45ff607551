package usermock

import (
	"context"

	domain "loan-tracker/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository. Unset,
// it knows no users.
type Repo struct {
	GetByIDsFn func(ctx context.Context, ids []string) (map[string]domain.User, error)
}

func (m *Repo) GetByIDs(ctx context.Context, ids []string) (map[string]domain.User, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return map[string]domain.User{}, nil
}

// Static returns a Repo backed by a fixed set of users.
func Static(users ...domain.User) *Repo {
	byID := make(map[string]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &Repo{GetByIDsFn: func(_ context.Context, ids []string) (map[string]domain.User, error) {
		out := map[string]domain.User{}
		for _, id := range ids {
			if u, ok := byID[id]; ok {
				out[id] = u
			}
		}
		return out, nil
	}}
}
