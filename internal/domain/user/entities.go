// Package user is a read-only view of the accounts owned by the identity
// provider. Only public fields are mapped.
package user

import "context"

type User struct {
	ID       string `gorm:"column:id;primaryKey;size:64" json:"id"`
	UserName string `gorm:"column:user_name;size:255" json:"userName"`
	Email    string `gorm:"column:email;size:255" json:"email"`
}

func (User) TableName() string { return "users" }

type Repository interface {
	// GetByIDs returns whichever of ids exist, keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]User, error)
}
