package auth

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	domainerrors "canteen/internal/domain/errors"
	mockService "canteen/internal/mocks/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
)

type fakeFirebaseAuth struct {
	created   []*auth.UserToCreate
	createErr error
	token     *auth.Token
	tokenErr  error
	users     map[string]*auth.UserRecord
	getErr    error
	links     []string
	revoked   []string
}

func (f *fakeFirebaseAuth) CreateUser(_ context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	f.created = append(f.created, user)

	return &auth.UserRecord{}, f.createErr
}

func (f *fakeFirebaseAuth) VerifyIDTokenAndCheckRevoked(context.Context, string) (*auth.Token, error) {
	return f.token, f.tokenErr
}

func (f *fakeFirebaseAuth) GetUser(_ context.Context, uid string) (*auth.UserRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.users[uid], nil
}

func (f *fakeFirebaseAuth) GetUserByEmail(_ context.Context, email string) (*auth.UserRecord, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, errors.New("lookup failed")
}

func (f *fakeFirebaseAuth) EmailVerificationLinkWithSettings(_ context.Context, email string, settings *auth.ActionCodeSettings) (string, error) {
	f.links = append(f.links, email)

	return "https://canteen.firebaseapp.com/__/auth/action?mode=verifyEmail&continueUrl=" + settings.URL, nil
}

func (f *fakeFirebaseAuth) PasswordResetLinkWithSettings(_ context.Context, email string, _ *auth.ActionCodeSettings) (string, error) {
	f.links = append(f.links, email)

	return "https://canteen.firebaseapp.com/__/auth/action?mode=resetPassword", nil
}

func (f *fakeFirebaseAuth) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)

	return nil
}

func userRecord(uid, email string, verified bool) *auth.UserRecord {
	return &auth.UserRecord{
		UserInfo:      &auth.UserInfo{UID: uid, Email: email, DisplayName: "Asha"},
		EmailVerified: verified,
	}
}

func createTestFirebaseProvider(t *testing.T) (*firebaseProvider, *fakeFirebaseAuth, *mockService.MockMailer) {
	client := &fakeFirebaseAuth{users: map[string]*auth.UserRecord{
		"u1": userRecord("u1", "asha@example.com", false),
	}}
	mailer := mockService.NewMockMailer(t)

	return &firebaseProvider{
		client:      client,
		mailer:      mailer,
		continueURL: "https://canteen.example/auth",
		logger:      slog.Default(),
		signIn: func(_ context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error) {
			if email == "asha@example.com" && password == "secret123" {
				return &identitytoolkit.VerifyPasswordResponse{
					IdToken:      "id-token",
					RefreshToken: "refresh-token",
					ExpiresIn:    3600,
					LocalId:      "u1",
				}, nil
			}

			return nil, &googleapi.Error{Code: http.StatusBadRequest, Message: "INVALID_LOGIN_CREDENTIALS"}
		},
	}, client, mailer
}

func TestFirebaseProvider_SignIn(t *testing.T) {
	provider, _, _ := createTestFirebaseProvider(t)

	identity, tokens, err := provider.SignIn(context.Background(), " Asha@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UID)
	assert.False(t, identity.EmailVerified)
	assert.Equal(t, "id-token", tokens.IDToken)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)

	_, _, err = provider.SignIn(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestFirebaseProvider_SignUp(t *testing.T) {
	provider, client, _ := createTestFirebaseProvider(t)

	_, _, err := provider.SignUp(context.Background(), "asha@example.com", "123", "Asha")
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)
	assert.Empty(t, client.created)

	identity, tokens, err := provider.SignUp(context.Background(), "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)
	assert.Len(t, client.created, 1)
	assert.Equal(t, "u1", identity.UID)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)

	client.createErr = errors.New("backend unavailable")
	_, _, err = provider.SignUp(context.Background(), "ravi@example.com", "secret123", "Ravi")
	assert.ErrorIs(t, err, domainerrors.ErrAuthProviderFailed)
}

func TestFirebaseProvider_Verify(t *testing.T) {
	provider, client, _ := createTestFirebaseProvider(t)
	ctx := context.Background()

	client.token = &auth.Token{UID: "u2", Claims: map[string]any{"email": "ravi@example.com", "email_verified": true}}
	identity, err := provider.Verify(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)

	// A stale unverified claim is re-read from the user record.
	client.users["u1"] = userRecord("u1", "asha@example.com", true)
	client.token = &auth.Token{UID: "u1", Claims: map[string]any{"email": "asha@example.com", "email_verified": false}}
	identity, err = provider.Verify(ctx, "token")
	require.NoError(t, err)
	assert.True(t, identity.EmailVerified)

	client.tokenErr = errors.New("ID token has been revoked")
	_, err = provider.Verify(ctx, "token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestFirebaseProvider_SendVerificationEmail(t *testing.T) {
	provider, client, mailer := createTestFirebaseProvider(t)
	ctx := context.Background()

	mailer.EXPECT().
		SendVerificationEmail(ctx, "asha@example.com", "Asha", "https://canteen.firebaseapp.com/__/auth/action?mode=verifyEmail&continueUrl=https://canteen.example/auth").
		Return(nil).
		Once()

	require.NoError(t, provider.SendVerificationEmail(ctx, "u1"))
	assert.Equal(t, []string{"asha@example.com"}, client.links)

	client.users["u1"] = userRecord("u1", "asha@example.com", true)
	require.NoError(t, provider.SendVerificationEmail(ctx, "u1"))
	assert.Len(t, client.links, 1, "verified users get no link")
}

func TestFirebaseProvider_SendPasswordResetEmail(t *testing.T) {
	provider, _, mailer := createTestFirebaseProvider(t)
	ctx := context.Background()

	mailer.EXPECT().
		SendPasswordResetEmail(ctx, "asha@example.com", "https://canteen.firebaseapp.com/__/auth/action?mode=resetPassword").
		Return(nil).
		Once()

	require.NoError(t, provider.SendPasswordResetEmail(ctx, "ASHA@example.com"))
}

func TestFirebaseProvider_SignOut(t *testing.T) {
	provider, client, _ := createTestFirebaseProvider(t)

	require.NoError(t, provider.SignOut(context.Background(), "u1"))
	assert.Equal(t, []string{"u1"}, client.revoked)
}

func TestFirebaseProvider_LookupFailureIsOpaque(t *testing.T) {
	provider, client, _ := createTestFirebaseProvider(t)
	client.getErr = errors.New("internal: quota exhausted")

	_, err := provider.Lookup(context.Background(), "u1")
	assert.ErrorIs(t, err, domainerrors.ErrAuthProviderFailed)
	assert.NotContains(t, err.Error(), "quota")
}

func TestMapToolkitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid password", &googleapi.Error{Message: "INVALID_PASSWORD"}, domainerrors.ErrInvalidCredentials},
		{"unknown email", &googleapi.Error{Message: "EMAIL_NOT_FOUND"}, domainerrors.ErrInvalidCredentials},
		{"throttled", &googleapi.Error{Message: "TOO_MANY_ATTEMPTS_TRY_LATER : Access disabled"}, domainerrors.ErrTooManyRequests},
		{"other api error", &googleapi.Error{Message: "OPERATION_NOT_ALLOWED"}, domainerrors.ErrAuthProviderFailed},
		{"transport error", errors.New("connection reset"), domainerrors.ErrAuthProviderFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapToolkitError(tt.err), tt.want)
		})
	}
}
