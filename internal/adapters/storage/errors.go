package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

// translate maps gorm errors onto the domain taxonomy. Errors already in the
// taxonomy pass through unchanged.
func translate(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewNotFoundError(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewConflictErrorWithDetails(entity, "concurrent write", err.Error())
	default:
		return err
	}
}
