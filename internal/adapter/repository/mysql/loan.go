package mysql

import (
	"context"

	"loan-tracker/internal/domain/apperr"
	loanDomain "loan-tracker/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return apperr.Store("create loan application", r.db.WithContext(ctx).Create(a).Error)
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (*loanDomain.Application, error) {
	var out loanDomain.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate("get loan application", "loan", id, err)
	}
	return &out, nil
}

func (r *LoanRepository) GetByIDs(ctx context.Context, ids []string) ([]loanDomain.Application, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []loanDomain.Application
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, apperr.Store("get loan applications", err)
	}
	return out, nil
}

func (r *LoanRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]loanDomain.Application, error) {
	out := []loanDomain.Application{}
	if len(userIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Store("list loan applications by user", err)
	}
	return out, nil
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Application, error) {
	out := []loanDomain.Application{}
	if err := r.db.WithContext(ctx).Order("updated_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, apperr.Store("list loan applications", err)
	}
	return out, nil
}

// UpdateStatus is an unconditional write followed by a read; concurrent
// updates to the same row resolve as last write wins.
func (r *LoanRepository) UpdateStatus(ctx context.Context, id string, s loanDomain.Status) (*loanDomain.Application, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&loanDomain.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": s, "updated_at": r.db.NowFunc()})
	if res.Error != nil {
		return nil, apperr.Store("update loan status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("loan", id)
	}
	return r.GetByID(ctx, id)
}
