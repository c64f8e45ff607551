package mysql

import (
	"errors"

	"loan-tracker/internal/domain/apperr"

	"gorm.io/gorm"
)

// translate maps gorm's not-found onto the domain error and wraps the rest.
func translate(op, resource, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, id)
	}
	return apperr.Store(op, err)
}
