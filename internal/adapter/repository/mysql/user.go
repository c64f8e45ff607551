package mysql

import (
	"context"

	"loan-tracker/internal/domain/apperr"
	userDomain "loan-tracker/internal/domain/user"

	"gorm.io/gorm"
)

// UserRepository reads the identity provider's users table. It never writes.
type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]userDomain.User, error) {
	out := make(map[string]userDomain.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []userDomain.User
	err := r.db.WithContext(ctx).
		Select("id", "user_name", "email").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Store("get users", err)
	}
	for _, u := range rows {
		out[u.ID] = u
	}
	return out, nil
}
