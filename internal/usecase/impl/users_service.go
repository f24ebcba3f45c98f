package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// usersService implements the UsersUsecase interface.
type usersService struct {
	users    repository.UserRepository
	sessions usecase.SessionRegistry
	logger   *slog.Logger
}

// UsersServiceParams holds dependencies for UsersService, injected by Fx.
type UsersServiceParams struct {
	fx.In

	Users    repository.UserRepository
	Sessions usecase.SessionRegistry
	Logger   *slog.Logger
}

// NewUsersService is the constructor for usersService.
func NewUsersService(params UsersServiceParams) usecase.UsersUsecase {
	return &usersService{
		users:    params.Users,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

func (srv *usersService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every profile sorted by name.
func (srv *usersService) ListUsers(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := srv.users.List(ctx, repository.NewQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return sortProfiles(profiles), nil
}

// StreamUsers follows every profile.
func (srv *usersService) StreamUsers(ctx context.Context) live.Feed {
	sub := live.Open[*entity.UserProfile](ctx, srv.users, repository.NewQuery(), live.WithLogger[*entity.UserProfile](srv.log(ctx)))

	return live.Project(sub, func(_ context.Context, profiles []*entity.UserProfile) ([]*entity.UserProfile, error) {
		return sortProfiles(profiles), nil
	})
}

// SetAdmin grants or revokes the privileged flag of another profile.
func (srv *usersService) SetAdmin(ctx context.Context, actor usecase.Actor, targetUID string, admin bool) (*entity.UserProfile, error) {
	if actor.UID == targetUID {
		return nil, domainerrors.ErrSelfAdminToggle
	}

	if err := srv.users.SetAdmin(ctx, targetUID, admin); err != nil {
		return nil, mapUserError(err, "failed to set admin flag")
	}
	srv.log(ctx).Info("Admin flag changed",
		slog.String("actor", actor.UID),
		slog.String("target", targetUID),
		slog.Bool("admin", admin),
	)

	if err := srv.sessions.Refresh(ctx, targetUID); err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.String("uid", targetUID), slog.Any("error", err))
	}

	profile, err := srv.users.FindByID(ctx, targetUID)
	if err != nil {
		return nil, mapUserError(err, "failed to reload profile")
	}

	return profile, nil
}

func sortProfiles(profiles []*entity.UserProfile) []*entity.UserProfile {
	sorted := slices.Clone(profiles)
	slices.SortStableFunc(sorted, func(a, b *entity.UserProfile) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	return sorted
}
