// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"
	"canteen/internal/usecase/guard"
	"canteen/internal/usecase/session"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRateLimit       = 5
	defaultRateLimitWindow = 15 * time.Minute
)

// authService implements the AuthUsecase interface.
type authService struct {
	provider service.IdentityProvider
	users    repository.UserRepository
	sessions usecase.SessionRegistry
	limiter  service.RateLimiter
	limit    int
	window   time.Duration
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Provider service.IdentityProvider
	Users    repository.UserRepository
	Sessions usecase.SessionRegistry
	Limiter  service.RateLimiter
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		provider: params.Provider,
		users:    params.Users,
		sessions: params.Sessions,
		limiter:  params.Limiter,
		limit:    defaultRateLimit,
		window:   defaultRateLimitWindow,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.RateLimit != nil {
		if params.Config.RateLimit.Limit > 0 {
			srv.limit = params.Config.RateLimit.Limit
		}
		if params.Config.RateLimit.Window > 0 {
			srv.window = params.Config.RateLimit.Window
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the identity and its profile, sends the verification email and opens a session.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	email := normalizeEmail(input.Email)
	if err := srv.allow(ctx, "signup:"+email); err != nil {
		return nil, err
	}

	identity, tokens, err := srv.provider.SignUp(ctx, email, input.Password, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign up")
	}

	profile := &entity.UserProfile{ID: identity.UID, Name: name}
	if err := srv.users.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to create user profile", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to create user profile")
	}

	if err := srv.provider.SendVerificationEmail(ctx, identity.UID); err != nil {
		srv.log(ctx).Warn("Failed to send verification email after sign-up",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)
	}

	s, err := srv.sessions.Activate(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate session")
	}
	srv.log(ctx).Info("User signed up", slog.String("uid", identity.UID))

	return authOutput(tokens, s), nil
}

// SignIn exchanges credentials for tokens and opens the session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	identity, tokens, err := srv.signIn(ctx, input)
	if err != nil {
		return nil, err
	}

	s, err := srv.sessions.Activate(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate session")
	}

	return authOutput(tokens, s), nil
}

// AdminSignIn signs in and keeps the session only when the profile carries the privileged flag.
func (srv *authService) AdminSignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	identity, tokens, err := srv.signIn(ctx, input)
	if err != nil {
		return nil, err
	}

	profile, err := srv.users.FindByID(ctx, identity.UID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load profile")
	}
	if profile == nil || !profile.AdminCheck {
		srv.log(ctx).Warn("Admin sign-in refused", slog.String("uid", identity.UID))

		return nil, domainerrors.ErrAdminAccessDenied
	}

	s, err := srv.sessions.Activate(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate session")
	}

	return authOutput(tokens, s), nil
}

func (srv *authService) signIn(ctx context.Context, input *usecase.SignInInput) (*entity.Identity, *entity.AuthTokens, error) {
	email := normalizeEmail(input.Email)
	if err := srv.allow(ctx, "signin:"+email); err != nil {
		return nil, nil, err
	}

	identity, tokens, err := srv.provider.SignIn(ctx, email, input.Password)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to sign in")
	}

	return identity, tokens, nil
}

// Authenticate verifies an ID token and returns the caller's session.
func (srv *authService) Authenticate(ctx context.Context, idToken string) (*session.Session, error) {
	if idToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	identity, err := srv.provider.Verify(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	s, err := srv.sessions.Activate(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate session")
	}

	return s, nil
}

// SendVerificationEmail resends the verification link.
func (srv *authService) SendVerificationEmail(ctx context.Context, uid string) error {
	if err := srv.allow(ctx, "verify:"+uid); err != nil {
		return err
	}

	if err := srv.provider.SendVerificationEmail(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to send verification email")
	}

	return nil
}

// SendPasswordReset sends a reset link to email.
func (srv *authService) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if err := srv.allow(ctx, "reset:"+email); err != nil {
		return err
	}

	if err := srv.provider.SendPasswordResetEmail(ctx, email); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	return nil
}

// ApplyAction consumes an email link when the identity provider handles its own links.
func (srv *authService) ApplyAction(ctx context.Context, input *usecase.ApplyActionInput) error {
	handler, ok := srv.provider.(service.ActionCodeHandler)
	if !ok {
		return domainerrors.ErrActionUnsupported
	}

	switch input.Mode {
	case service.ActionVerifyEmail:
	case service.ActionResetPassword:
		if input.NewPassword == "" {
			return domainerrors.ErrValidationFailed.WithDetails("new password is required")
		}
	default:
		return domainerrors.ErrActionCodeInvalid
	}

	if err := handler.ApplyActionCode(ctx, input.Mode, input.Code, input.NewPassword); err != nil {
		return errors.Wrap(err, "failed to apply action code")
	}

	return nil
}

// Status re-reads the identity and the profile and reports where the client should go.
func (srv *authService) Status(ctx context.Context, uid string) (*usecase.AuthStatus, error) {
	identity, err := srv.provider.Lookup(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up identity")
	}

	s, err := srv.sessions.Activate(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate session")
	}

	return &usecase.AuthStatus{
		Identity: s.Identity(),
		Profile:  s.Profile(),
		Landing:  guard.Landing(s.Identity(), s.Profile()),
	}, nil
}

// SignOut revokes the identity's tokens and ends its session.
func (srv *authService) SignOut(ctx context.Context, uid string) error {
	if err := srv.provider.SignOut(ctx, uid); err != nil {
		srv.log(ctx).Warn("Failed to revoke tokens on sign-out", slog.String("uid", uid), slog.Any("error", err))
	}
	srv.sessions.End(ctx, uid)
	srv.log(ctx).Info("User signed out", slog.String("uid", uid))

	return nil
}

// allow fails open when the limiter backend is unavailable.
func (srv *authService) allow(ctx context.Context, key string) error {
	ok, err := srv.limiter.Allow(ctx, key, srv.limit, srv.window)
	if err != nil {
		srv.log(ctx).Warn("Rate limiter unavailable", slog.String("key", key), slog.Any("error", err))

		return nil
	}
	if !ok {
		return domainerrors.ErrTooManyRequests
	}

	return nil
}

func authOutput(tokens *entity.AuthTokens, s *session.Session) *usecase.AuthOutput {
	identity := s.Identity()
	profile := s.Profile()

	return &usecase.AuthOutput{
		Tokens:   tokens,
		Identity: identity,
		Profile:  profile,
		Landing:  guard.Landing(identity, profile),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
