package user

import (
	"context"

	"loan-tracker/pkg/id"
)

// Resolver finds a user by any stored form of its reference.
type Resolver func(ref string) (User, bool)

// Lookup batch-loads the users behind refs. Each ref is queried in both its
// raw and canonical form, since either may be what the users table holds.
func Lookup(ctx context.Context, repo Repository, refs []string) (Resolver, error) {
	seen := make(map[string]struct{}, len(refs)*2)
	var keys []string
	for _, r := range refs {
		for _, c := range id.Candidates(r) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			keys = append(keys, c)
		}
	}

	found, err := repo.GetByIDs(ctx, keys)
	if err != nil {
		return nil, err
	}
	return func(ref string) (User, bool) {
		for _, c := range id.Candidates(ref) {
			if u, ok := found[c]; ok {
				return u, true
			}
		}
		return User{}, false
	}, nil
}
