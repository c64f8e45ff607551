package loan

import (
	"context"
	"time"

	"loan-tracker/internal/domain/apperr"
	domain "loan-tracker/internal/domain/loan"
	"loan-tracker/internal/domain/user"
	"loan-tracker/pkg/id"
)

type Usecase struct {
	repo  domain.Repository
	users user.Repository
	loc   *time.Location
	now   func() time.Time
}

type Option func(*Usecase)

// WithLocation sets the zone the submission time and date are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(u *Usecase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

func NewUsecase(r domain.Repository, users user.Repository, opts ...Option) *Usecase {
	u := &Usecase{repo: r, users: users, loc: time.Local, now: time.Now}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Submit creates a pending application owned by identity.
func (u *Usecase) Submit(ctx context.Context, identity string, in SubmitInput) (*LoanDTO, error) {
	owner, _ := id.Canonical(identity)
	a, err := domain.NewApplication(id.NewID32(), owner, domain.Fields(in), u.now().In(u.loc))
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	dto := ToLoanDTO(a)
	return &dto, nil
}

// ListOwn returns the caller's applications, newest first. Rows written
// before ids were normalized may hold the raw identity, so both forms match.
func (u *Usecase) ListOwn(ctx context.Context, identity string) ([]LoanDTO, error) {
	candidates := id.Candidates(identity)
	if len(candidates) == 0 {
		return nil, apperr.Invalid("missing user identity")
	}
	rows, err := u.repo.ListByUserIDs(ctx, candidates)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToLoanDTO(&rows[i]))
	}
	return out, nil
}

// ListAll returns every application, most recently updated first, with the
// submitter's public fields attached where the user resolves.
func (u *Usecase) ListAll(ctx context.Context) ([]LoanWithUserDTO, error) {
	rows, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(rows))
	for _, r := range rows {
		refs = append(refs, r.UserID)
	}
	resolve, err := user.Lookup(ctx, u.users, refs)
	if err != nil {
		return nil, err
	}

	out := make([]LoanWithUserDTO, 0, len(rows))
	for i := range rows {
		item := LoanWithUserDTO{LoanDTO: ToLoanDTO(&rows[i])}
		if usr, ok := resolve(rows[i].UserID); ok {
			item.User = ToUserDTO(usr)
		}
		out = append(out, item)
	}
	return out, nil
}

// UpdateStatusAsVerifier lets a verifier mark a loan verified or rejected.
func (u *Usecase) UpdateStatusAsVerifier(ctx context.Context, loanID, status string) (*LoanDTO, error) {
	st, err := domain.VerifierStatus(status)
	if err != nil {
		return nil, err
	}
	return u.updateStatus(ctx, loanID, st)
}

// UpdateStatusAsAdmin lets an admin mark a loan approved or rejected.
func (u *Usecase) UpdateStatusAsAdmin(ctx context.Context, loanID, status string) (*LoanDTO, error) {
	st, err := domain.AdminStatus(status)
	if err != nil {
		return nil, err
	}
	return u.updateStatus(ctx, loanID, st)
}

func (u *Usecase) updateStatus(ctx context.Context, loanID string, st domain.Status) (*LoanDTO, error) {
	ref, _ := id.Canonical(loanID)
	if ref == "" {
		return nil, apperr.Invalid("loanId is required")
	}
	a, err := u.repo.UpdateStatus(ctx, ref, st)
	if err != nil {
		return nil, err
	}
	dto := ToLoanDTO(a)
	return &dto, nil
}
