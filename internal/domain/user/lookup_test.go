package user

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type stubRepo struct {
	rows  map[string]User
	err   error
	asked []string
}

func (s *stubRepo) GetByIDs(_ context.Context, ids []string) (map[string]User, error) {
	s.asked = append(s.asked, ids...)
	if s.err != nil {
		return nil, s.err
	}
	out := map[string]User{}
	for _, id := range ids {
		if u, ok := s.rows[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func TestLookup_ResolvesEitherForm(t *testing.T) {
	const canonical = "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	const hyphenated = "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88"
	repo := &stubRepo{rows: map[string]User{
		canonical:  {ID: canonical, UserName: "alice"},
		"legacy-7": {ID: "legacy-7", UserName: "bob"},
	}}

	resolve, err := Lookup(context.Background(), repo, []string{hyphenated, canonical, "legacy-7", "ghost"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	asked := append([]string(nil), repo.asked...)
	sort.Strings(asked)
	want := []string{canonical, hyphenated, "ghost", "legacy-7"}
	sort.Strings(want)
	if len(asked) != len(want) {
		t.Fatalf("asked %v, want %v", asked, want)
	}
	for i := range want {
		if asked[i] != want[i] {
			t.Fatalf("asked %v, want %v", asked, want)
		}
	}

	if u, ok := resolve(hyphenated); !ok || u.UserName != "alice" {
		t.Fatalf("hyphenated ref not resolved: %+v %v", u, ok)
	}
	if u, ok := resolve("legacy-7"); !ok || u.UserName != "bob" {
		t.Fatalf("legacy ref not resolved: %+v %v", u, ok)
	}
	if _, ok := resolve("ghost"); ok {
		t.Fatal("ghost should not resolve")
	}
}

func TestLookup_HyphenatedRowFromStoredCanonicalRef(t *testing.T) {
	const canonical = "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	const hyphenated = "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88"
	// the users table keys this account in hyphenated form; loans and
	// repayments carry the canonical 32-hex id
	repo := &stubRepo{rows: map[string]User{
		hyphenated: {ID: hyphenated, UserName: "carol"},
	}}

	resolve, err := Lookup(context.Background(), repo, []string{canonical})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	u, ok := resolve(canonical)
	if !ok || u.UserName != "carol" {
		t.Fatalf("asked=%v: canonical ref did not resolve hyphenated row: %+v %v", repo.asked, u, ok)
	}
}

func TestLookup_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Lookup(context.Background(), &stubRepo{err: boom}, []string{"a"})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}
