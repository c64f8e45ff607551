package mysql

import (
	"context"

	"loan-tracker/internal/domain/apperr"
	repaymentDomain "loan-tracker/internal/domain/repayment"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

func (r *RepaymentRepository) Create(ctx context.Context, rp *repaymentDomain.Repayment) error {
	return apperr.Store("create repayment", r.db.WithContext(ctx).Create(rp).Error)
}

func (r *RepaymentRepository) List(ctx context.Context) ([]repaymentDomain.Repayment, error) {
	out := []repaymentDomain.Repayment{}
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, apperr.Store("list repayments", err)
	}
	return out, nil
}
