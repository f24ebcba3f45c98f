package impl

import (
	"context"
	"testing"
	"time"

	"canteen/config"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	mockRepo "canteen/internal/mocks/repository"
	mockService "canteen/internal/mocks/service"
	mockUsecase "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"
	"canteen/internal/usecase/guard"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	provider *mockService.MockIdentityProvider
	users    *mockRepo.MockUserRepository
	sessions *mockUsecase.MockSessionRegistry
	limiter  *mockService.MockRateLimiter
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		provider: mockService.NewMockIdentityProvider(t),
		users:    mockRepo.NewMockUserRepository(t),
		sessions: mockUsecase.NewMockSessionRegistry(t),
		limiter:  mockService.NewMockRateLimiter(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		Provider: fx.provider,
		Users:    fx.users,
		Sessions: fx.sessions,
		Limiter:  fx.limiter,
		Config:   &config.Config{RateLimit: &config.RateLimitConfig{Limit: 3, Window: time.Minute}},
		Logger:   newDiscardLogger(),
	})

	return fx
}

func (fx authServiceFixtures) allow(key string, ok bool, err error) {
	fx.limiter.EXPECT().Allow(mock.Anything, key, 3, time.Minute).Return(ok, err).Once()
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "asha@example.com"}
	tokens := &entity.AuthTokens{IDToken: "id", RefreshToken: "refresh", ExpiresIn: 3600}

	fx.allow("signup:asha@example.com", true, nil)
	fx.provider.EXPECT().SignUp(ctx, "asha@example.com", "secret1", "Asha").Return(identity, tokens, nil).Once()
	fx.users.EXPECT().Create(ctx, &entity.UserProfile{ID: "u1", Name: "Asha"}).Return(nil).Once()
	fx.provider.EXPECT().SendVerificationEmail(ctx, "u1").Return(errors.New("smtp down")).Once()
	fx.sessions.EXPECT().Activate(ctx, identity).
		Return(newTestSessionFrom(identity, &entity.UserProfile{ID: "u1", Name: "Asha"}), nil).Once()

	out, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Name: "  Asha ", Email: " Asha@Example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, tokens, out.Tokens)
	assert.Equal(t, "Asha", out.Profile.Name)
	assert.False(t, out.Profile.AdminCheck)
	assert.Equal(t, guard.RouteVerifyEmail, out.Landing)
}

func TestAuthService_SignUp_NameRequired(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Name: "  ", Email: "a@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_SignUp_EmailInUse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.allow("signup:a@example.com", true, nil)
	fx.provider.EXPECT().SignUp(ctx, "a@example.com", "secret1", "A").Return(nil, nil, domainerrors.ErrEmailInUse).Once()

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Name: "A", Email: "a@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "a@example.com", EmailVerified: true}

	fx.allow("signin:a@example.com", true, nil)
	fx.provider.EXPECT().SignIn(ctx, "a@example.com", "secret1").Return(identity, &entity.AuthTokens{IDToken: "id"}, nil).Once()
	fx.sessions.EXPECT().Activate(ctx, identity).Return(newTestSessionFrom(identity, nil), nil).Once()

	out, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "a@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, guard.RouteMenu, out.Landing)
}

func TestAuthService_SignIn_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)

	fx.allow("signin:a@example.com", false, nil)

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "a@example.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}

func TestAuthService_SignIn_LimiterFailureFailsOpen(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.allow("signin:a@example.com", false, errors.New("redis down"))
	fx.provider.EXPECT().SignIn(ctx, "a@example.com", "bad").Return(nil, nil, domainerrors.ErrInvalidCredentials).Once()

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "a@example.com", Password: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_AdminSignIn_CustomerDenied(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "a@example.com", EmailVerified: true}

	fx.allow("signin:a@example.com", true, nil)
	fx.provider.EXPECT().SignIn(ctx, "a@example.com", "secret1").Return(identity, &entity.AuthTokens{}, nil).Once()
	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1", Name: "A"}, nil).Once()

	_, err := fx.service.AdminSignIn(ctx, &usecase.SignInInput{Email: "a@example.com", Password: "secret1"})

	require.ErrorIs(t, err, domainerrors.ErrAdminAccessDenied)
	assert.Equal(t, "Access Denied: You are not an authorized admin.", domainerrors.ErrAdminAccessDenied.Message())
}

func TestAuthService_AdminSignIn_MissingProfileDenied(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "a@example.com"}

	fx.allow("signin:a@example.com", true, nil)
	fx.provider.EXPECT().SignIn(ctx, "a@example.com", "secret1").Return(identity, &entity.AuthTokens{}, nil).Once()
	fx.users.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrUserNotFound).Once()

	_, err := fx.service.AdminSignIn(ctx, &usecase.SignInInput{Email: "a@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrAdminAccessDenied)
}

func TestAuthService_AdminSignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "a1", Email: "admin@example.com"}
	profile := &entity.UserProfile{ID: "a1", Name: "Admin", AdminCheck: true}

	fx.allow("signin:admin@example.com", true, nil)
	fx.provider.EXPECT().SignIn(ctx, "admin@example.com", "secret1").Return(identity, &entity.AuthTokens{}, nil).Once()
	fx.users.EXPECT().FindByID(ctx, "a1").Return(profile, nil).Once()
	fx.sessions.EXPECT().Activate(ctx, identity).Return(newTestSessionFrom(identity, profile), nil).Once()

	out, err := fx.service.AdminSignIn(ctx, &usecase.SignInInput{Email: "admin@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, guard.RouteAdmin, out.Landing)
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(context.Background(), "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.provider.EXPECT().Verify(ctx, "bad").Return(nil, domainerrors.ErrTokenInvalid).Once()

		_, err := fx.service.Authenticate(ctx, "bad")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("valid token activates session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		identity := &entity.Identity{UID: "u1", EmailVerified: true}
		s := newTestSessionFrom(identity, nil)

		fx.provider.EXPECT().Verify(ctx, "good").Return(identity, nil).Once()
		fx.sessions.EXPECT().Activate(ctx, identity).Return(s, nil).Once()

		got, err := fx.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Same(t, s, got)
	})
}

func TestAuthService_SendPasswordReset(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.allow("reset:nobody@example.com", true, nil)
		fx.provider.EXPECT().SendPasswordResetEmail(ctx, "nobody@example.com").Return(domainerrors.ErrAccountNotFound).Once()

		err := fx.service.SendPasswordReset(ctx, "Nobody@example.com")

		require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
		assert.Equal(t, "No account found with this email.", domainerrors.ErrAccountNotFound.Message())
	})

	t.Run("email required", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.SendPasswordReset(context.Background(), " ")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAuthService_SendVerificationEmail_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)

	fx.allow("verify:u1", false, nil)

	err := fx.service.SendVerificationEmail(context.Background(), "u1")

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
}

type actionProvider struct {
	*mockService.MockIdentityProvider
	*mockService.MockActionCodeHandler
}

func TestAuthService_ApplyAction(t *testing.T) {
	t.Run("hosted provider", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.ApplyAction(context.Background(), &usecase.ApplyActionInput{Mode: service.ActionVerifyEmail, Code: "c"})

		assert.ErrorIs(t, err, domainerrors.ErrActionUnsupported)
	})

	t.Run("local provider", func(t *testing.T) {
		handler := mockService.NewMockActionCodeHandler(t)
		srv := NewAuthService(AuthServiceParams{
			Provider: actionProvider{mockService.NewMockIdentityProvider(t), handler},
			Logger:   newDiscardLogger(),
		})
		ctx := context.Background()

		handler.EXPECT().ApplyActionCode(ctx, service.ActionResetPassword, "code", "newpass").Return(nil).Once()

		require.NoError(t, srv.ApplyAction(ctx, &usecase.ApplyActionInput{Mode: service.ActionResetPassword, Code: "code", NewPassword: "newpass"}))
		assert.ErrorIs(t, srv.ApplyAction(ctx, &usecase.ApplyActionInput{Mode: service.ActionResetPassword, Code: "code"}), domainerrors.ErrValidationFailed)
		assert.ErrorIs(t, srv.ApplyAction(ctx, &usecase.ApplyActionInput{Mode: "bogus", Code: "code"}), domainerrors.ErrActionCodeInvalid)
	})
}

func TestAuthService_Status(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", EmailVerified: true}

	fx.provider.EXPECT().Lookup(ctx, "u1").Return(identity, nil).Once()
	fx.sessions.EXPECT().Activate(ctx, identity).Return(newTestSessionFrom(identity, nil), nil).Once()

	status, err := fx.service.Status(ctx, "u1")

	require.NoError(t, err)
	assert.True(t, status.Identity.EmailVerified)
	assert.Equal(t, guard.RouteMenu, status.Landing)
}

func TestAuthService_SignOut_RevocationFailureStillEndsSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.provider.EXPECT().SignOut(ctx, "u1").Return(errors.New("provider down")).Once()
	fx.sessions.EXPECT().End(ctx, "u1").Return().Once()

	require.NoError(t, fx.service.SignOut(ctx, "u1"))
}
