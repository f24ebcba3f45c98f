package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/usecase/live"
)

// AccountUsecase manages the caller's own profile.
type AccountUsecase interface {
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Rename changes the display name only. The privileged flag cannot be changed by its owner.
	Rename(ctx context.Context, uid, name string) (*entity.UserProfile, error)
}

// UsersUsecase is the administrators' view over every profile.
type UsersUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.UserProfile, error)

	// StreamUsers renders []*entity.UserProfile frames.
	StreamUsers(ctx context.Context) live.Feed

	// SetAdmin sets another profile's privileged flag. Changing one's own flag fails with ErrSelfAdminToggle.
	SetAdmin(ctx context.Context, actor Actor, targetUID string, admin bool) (*entity.UserProfile, error)
}
