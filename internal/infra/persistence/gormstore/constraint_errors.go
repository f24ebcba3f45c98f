package gormstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognizes duplicate keys on both drivers. The SQLite driver
// does not translate its errors, so the message is inspected as well.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// notFound converts gorm.ErrRecordNotFound into the repository's own sentinel.
func notFound(err, sentinel error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}

	return errors.Wrap(err, msg)
}
