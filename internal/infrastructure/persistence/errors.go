package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
	"gorm.io/gorm"
)

// isUniqueViolation reports a unique-constraint failure from postgres or sqlite
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// isForeignKeyViolation reports a row that is still referenced, or a reference to a missing row
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23503") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

// isCheckViolation reports a value rejected by a CHECK constraint
func isCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23514") ||
		strings.Contains(msg, "violates check constraint") ||
		strings.Contains(msg, "CHECK constraint failed")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// translateError maps driver errors onto domain errors. what names the entity in messages.
func translateError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewDomainError("NOT_FOUND", what+" not found")
	case isUniqueViolation(err):
		return shared.NewDomainError("ALREADY_EXISTS", what+" already exists")
	case isForeignKeyViolation(err):
		return shared.NewDomainError("CONFLICT", what+" references or is referenced by another record")
	case isCheckViolation(err):
		return shared.NewValidationError("%s has a value outside its allowed range", what)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// translateNumberedError is translateError for numbered documents, where a
// duplicate means two writers computed the same document number
func translateNumberedError(err error, what, number string) error {
	if isUniqueViolation(err) {
		return shared.NewDomainError("CONFLICT",
			fmt.Sprintf("%s number %s is already in use, retry the request", what, number))
	}
	return translateError(err, what)
}
