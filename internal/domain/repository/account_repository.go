package repository

import (
	"context"
	"errors"
	"time"

	"canteen/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when no local account matches.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when the email address is already registered.
	ErrAccountExists = errors.New("account already exists")
)

// AccountRepository stores the credentials of the self-hosted identity provider.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error

	FindByUID(ctx context.Context, uid string) (*entity.Account, error)

	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	MarkVerified(ctx context.Context, uid string) error

	// SetPassword replaces the hash and rejects every token issued before validAfter.
	SetPassword(ctx context.Context, uid, hash string, validAfter time.Time) error

	// RevokeTokens rejects every token issued before validAfter.
	RevokeTokens(ctx context.Context, uid string, validAfter time.Time) error
}
