package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lifeboard/lifeboard/pkg/domain"
)

// mapError translates storage errors into domain errors where a domain
// meaning exists; everything else passes through opaque.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyExists
	}
	return err
}
