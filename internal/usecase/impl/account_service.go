package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxNameLength = 100

// accountService implements the AccountUsecase interface.
type accountService struct {
	users    repository.UserRepository
	sessions usecase.SessionRegistry
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Users    repository.UserRepository
	Sessions usecase.SessionRegistry
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		users:    params.Users,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's profile.
func (srv *accountService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.users.FindByID(ctx, uid)
	if err != nil {
		return nil, mapUserError(err, "failed to get profile")
	}

	return profile, nil
}

// Rename changes the caller's display name and refreshes the active session.
func (srv *accountService) Rename(ctx context.Context, uid, name string) (*entity.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must be between 1 and 100 characters")
	}

	if err := srv.users.UpdateName(ctx, uid, name); err != nil {
		return nil, mapUserError(err, "failed to rename profile")
	}
	srv.refresh(ctx, uid)

	return srv.GetProfile(ctx, uid)
}

func (srv *accountService) refresh(ctx context.Context, uid string) {
	if err := srv.sessions.Refresh(ctx, uid); err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.String("uid", uid), slog.Any("error", err))
	}
}

func mapUserError(err error, msg string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrProfileNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
