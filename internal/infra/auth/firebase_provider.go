package auth

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// firebaseAuthClient is the subset of *auth.Client used by the provider.
type firebaseAuthClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	EmailVerificationLinkWithSettings(ctx context.Context, email string, settings *auth.ActionCodeSettings) (string, error)
	PasswordResetLinkWithSettings(ctx context.Context, email string, settings *auth.ActionCodeSettings) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// passwordSigner exchanges email and password for Firebase tokens.
type passwordSigner func(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error)

// firebaseProvider backs identities with Firebase Authentication. The Admin SDK manages
// accounts and tokens; password sign-in goes through the Identity Toolkit REST API.
type firebaseProvider struct {
	client      firebaseAuthClient
	signIn      passwordSigner
	mailer      service.Mailer
	continueURL string
	logger      *slog.Logger
}

// FirebaseProviderParams holds dependencies for the Firebase identity provider, injected by Fx.
type FirebaseProviderParams struct {
	fx.In

	Config *config.Config
	Client *auth.Client
	Mailer service.Mailer
	Logger *slog.Logger
}

// NewFirebaseProvider creates the Firebase identity provider.
func NewFirebaseProvider(params FirebaseProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("firebase apiKey is required for password sign-in")
	}

	toolkit, err := identitytoolkit.NewService(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseProvider{
		client:      params.Client,
		signIn:      toolkitSigner(toolkit),
		mailer:      params.Mailer,
		continueURL: cfg.ContinueURL,
		logger:      params.Logger,
	}, nil
}

func toolkitSigner(toolkit *identitytoolkit.Service) passwordSigner {
	return func(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error) {
		return toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
			Email:             email,
			Password:          password,
			ReturnSecureToken: true,
		}).Context(ctx).Do()
	}
}

func (p *firebaseProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// SignUp creates the Firebase user and signs it in.
func (p *firebaseProvider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Identity, *entity.AuthTokens, error) {
	if utf8.RuneCountInString(password) < service.MinPasswordLength {
		return nil, nil, domainerrors.ErrWeakPassword
	}

	email = normalizeEmail(email)
	user := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false)
	if _, err := p.client.CreateUser(ctx, user); err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, nil, domainerrors.ErrEmailInUse
		}
		p.log(ctx).Error("Failed to create Firebase user", slog.Any("error", err))

		return nil, nil, domainerrors.ErrAuthProviderFailed
	}

	return p.SignIn(ctx, email, password)
}

// SignIn verifies the password with Identity Toolkit.
func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*entity.Identity, *entity.AuthTokens, error) {
	resp, err := p.signIn(ctx, normalizeEmail(email), password)
	if err != nil {
		mapped := mapToolkitError(err)
		if errors.Is(mapped, domainerrors.ErrAuthProviderFailed) {
			p.log(ctx).Error("Password sign-in failed", slog.Any("error", err))
		}

		return nil, nil, mapped
	}

	expiresIn := resp.ExpiresIn
	tokens := &entity.AuthTokens{
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    expiresIn,
	}

	// The sign-in response does not carry the verification flag.
	identity, err := p.Lookup(ctx, resp.LocalId)
	if err != nil {
		return nil, nil, err
	}

	return identity, tokens, nil
}

// Verify checks the ID token signature and revocation. The verification claim is only as
// fresh as the token, so an unverified claim is re-read from the user record.
func (p *firebaseProvider) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		p.log(ctx).Debug("Rejected Firebase ID token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid
	}

	email, _ := token.Claims["email"].(string)
	verified, _ := token.Claims["email_verified"].(bool)
	if verified {
		return &entity.Identity{UID: token.UID, Email: email, EmailVerified: true}, nil
	}

	identity, err := p.Lookup(ctx, token.UID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, err
	}

	return identity, nil
}

// Lookup re-reads the user record of uid.
func (p *firebaseProvider) Lookup(ctx context.Context, uid string) (*entity.Identity, error) {
	user, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return nil, p.mapUserError(ctx, err)
	}

	return recordIdentity(user), nil
}

// LookupByEmail resolves the user registered under email.
func (p *firebaseProvider) LookupByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	user, err := p.client.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, p.mapUserError(ctx, err)
	}

	return recordIdentity(user), nil
}

// SendVerificationEmail generates a Firebase verification link and mails it.
func (p *firebaseProvider) SendVerificationEmail(ctx context.Context, uid string) error {
	user, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return p.mapUserError(ctx, err)
	}
	if user.EmailVerified {
		return nil
	}

	link, err := p.client.EmailVerificationLinkWithSettings(ctx, user.Email, p.actionSettings())
	if err != nil {
		p.log(ctx).Error("Failed to generate verification link", slog.String("uid", uid), slog.Any("error", err))

		return domainerrors.ErrAuthProviderFailed
	}

	return errors.Wrap(p.mailer.SendVerificationEmail(ctx, user.Email, user.DisplayName, link), "failed to send verification email")
}

// SendPasswordResetEmail generates a Firebase reset link and mails it.
func (p *firebaseProvider) SendPasswordResetEmail(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	link, err := p.client.PasswordResetLinkWithSettings(ctx, email, p.actionSettings())
	if err != nil {
		return p.mapUserError(ctx, err)
	}

	return errors.Wrap(p.mailer.SendPasswordResetEmail(ctx, email, link), "failed to send password reset email")
}

// SignOut revokes every refresh token of uid.
func (p *firebaseProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return p.mapUserError(ctx, err)
	}

	return nil
}

func (p *firebaseProvider) actionSettings() *auth.ActionCodeSettings {
	if p.continueURL == "" {
		return nil
	}

	return &auth.ActionCodeSettings{URL: p.continueURL}
}

func (p *firebaseProvider) mapUserError(ctx context.Context, err error) error {
	if auth.IsUserNotFound(err) {
		return domainerrors.ErrAccountNotFound
	}
	p.log(ctx).Error("Firebase Authentication call failed", slog.Any("error", err))

	return domainerrors.ErrAuthProviderFailed
}

func recordIdentity(user *auth.UserRecord) *entity.Identity {
	identity := &entity.Identity{EmailVerified: user.EmailVerified}
	if user.UserInfo != nil {
		identity.UID = user.UID
		identity.Email = user.Email
	}

	return identity
}

// mapToolkitError translates Identity Toolkit error codes. The REST API reports the code as
// the message, sometimes followed by " : <description>".
func mapToolkitError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return domainerrors.ErrAuthProviderFailed
	}

	code, _, _ := strings.Cut(apiErr.Message, " ")
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL", "USER_DISABLED":
		return domainerrors.ErrInvalidCredentials
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return domainerrors.ErrTooManyRequests
	default:
		return domainerrors.ErrAuthProviderFailed
	}
}
