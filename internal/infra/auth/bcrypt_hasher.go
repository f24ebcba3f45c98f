// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode/utf8"

	"canteen/config"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores anything longer.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Local != nil && cfg.Local.BcryptCost >= bcrypt.MinCost && cfg.Local.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Local.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// Passwords shorter than six characters are rejected with ErrWeakPassword.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if utf8.RuneCountInString(password) < service.MinPasswordLength {
		return "", domainerrors.ErrWeakPassword
	}
	if len(password) > maxPasswordBytes {
		return "", domainerrors.ErrValidationFailed.WithDetails("password is too long")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
