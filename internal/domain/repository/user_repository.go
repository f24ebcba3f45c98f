package repository

import (
	"context"
	"errors"

	"canteen/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// Users document fields.
const (
	FieldUserName       = "Name"
	FieldUserAdminCheck = "AdminCheck"
)

// UserRepository defines the operations over the Users collection.
type UserRepository interface {
	Collection[*entity.UserProfile]

	// FindByID retrieves a single profile by UID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindByIDs retrieves the profiles that exist for the given UIDs, keyed by UID.
	// Missing profiles are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*entity.UserProfile, error)

	// Create writes a new profile under profile.ID.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateName changes only the display name.
	UpdateName(ctx context.Context, id, name string) error

	// SetAdmin changes only the privileged flag.
	SetAdmin(ctx context.Context, id string, admin bool) error
}
