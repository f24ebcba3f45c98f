package auth

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBaseURL = "http://localhost:8080"
	actionPath     = "/auth/action"
)

// localProvider is the self-hosted identity backend. Accounts live in the document store,
// sessions are HS256 tokens and email links carry action tokens.
type localProvider struct {
	accounts repository.AccountRepository
	tokens   service.TokenService
	hasher   service.PasswordHasher
	mailer   service.Mailer
	baseURL  string
	logger   *slog.Logger
	now      func() time.Time
}

// LocalProviderParams holds dependencies for the local identity provider, injected by Fx.
type LocalProviderParams struct {
	fx.In

	Config   *config.Config
	Accounts repository.AccountRepository
	Tokens   service.TokenService
	Hasher   service.PasswordHasher
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// NewLocalProvider creates the local identity provider.
func NewLocalProvider(params LocalProviderParams) service.IdentityProvider {
	return newLocalProvider(params)
}

func newLocalProvider(params LocalProviderParams) *localProvider {
	baseURL := defaultBaseURL
	if params.Config != nil && params.Config.Local != nil && params.Config.Local.BaseURL != "" {
		baseURL = strings.TrimRight(params.Config.Local.BaseURL, "/")
	}

	return &localProvider{
		accounts: params.Accounts,
		tokens:   params.Tokens,
		hasher:   params.Hasher,
		mailer:   params.Mailer,
		baseURL:  baseURL,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (p *localProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// SignUp registers a new account and signs it in.
func (p *localProvider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Identity, *entity.AuthTokens, error) {
	email = normalizeEmail(email)
	if _, err := p.accounts.FindByEmail(ctx, email); err == nil {
		return nil, nil, domainerrors.ErrEmailInUse
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, nil, errors.Wrap(err, "failed to look up account")
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	now := p.now().UTC()
	account := &entity.Account{
		UID:              uuid.NewString(),
		Email:            email,
		PasswordHash:     hash,
		DisplayName:      displayName,
		TokensValidAfter: now.Truncate(time.Second),
		CreatedAt:        now,
	}
	if err := p.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return nil, nil, domainerrors.ErrEmailInUse
		}

		return nil, nil, errors.Wrap(err, "failed to create account")
	}

	return p.issue(account)
}

// SignIn checks the password and issues fresh tokens.
func (p *localProvider) SignIn(ctx context.Context, email, password string) (*entity.Identity, *entity.AuthTokens, error) {
	account, err := p.accounts.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}

		return nil, nil, errors.Wrap(err, "failed to look up account")
	}
	if !p.hasher.Check(password, account.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	return p.issue(account)
}

func (p *localProvider) issue(account *entity.Account) (*entity.Identity, *entity.AuthTokens, error) {
	access, refresh, err := p.tokens.GenerateTokens(account.UID, account.Email, account.EmailVerified)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to issue tokens")
	}

	return toIdentity(account), &entity.AuthTokens{
		IDToken:      access,
		RefreshToken: refresh,
		ExpiresIn:    int64(p.tokens.GetAccessTokenDuration().Seconds()),
	}, nil
}

// Verify validates an access token against the stored account. The verification flag is
// read from the account, so a token minted before verification still reports it.
func (p *localProvider) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateToken(idToken, service.TokenTypeAccess)
	if err != nil {
		p.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid
	}

	account, err := p.accounts.FindByUID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load account")
	}
	if claims.IssuedAt == nil || claims.IssuedAt.Before(account.TokensValidAfter) {
		return nil, domainerrors.ErrTokenInvalid
	}

	return toIdentity(account), nil
}

// Lookup re-reads the account of uid.
func (p *localProvider) Lookup(ctx context.Context, uid string) (*entity.Identity, error) {
	account, err := p.accounts.FindByUID(ctx, uid)
	if err != nil {
		return nil, mapAccountError(err)
	}

	return toIdentity(account), nil
}

// LookupByEmail resolves the account registered under email.
func (p *localProvider) LookupByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	account, err := p.accounts.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, mapAccountError(err)
	}

	return toIdentity(account), nil
}

// SendVerificationEmail mails a verification link unless the address is already verified.
func (p *localProvider) SendVerificationEmail(ctx context.Context, uid string) error {
	account, err := p.accounts.FindByUID(ctx, uid)
	if err != nil {
		return mapAccountError(err)
	}
	if account.EmailVerified {
		p.log(ctx).Debug("Email already verified, skipping", slog.String("uid", uid))

		return nil
	}

	link, err := p.actionLink(uid, service.ActionVerifyEmail)
	if err != nil {
		return err
	}

	return errors.Wrap(p.mailer.SendVerificationEmail(ctx, account.Email, account.DisplayName, link), "failed to send verification email")
}

// SendPasswordResetEmail mails a reset link to a registered address.
func (p *localProvider) SendPasswordResetEmail(ctx context.Context, email string) error {
	account, err := p.accounts.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return mapAccountError(err)
	}

	link, err := p.actionLink(account.UID, service.ActionResetPassword)
	if err != nil {
		return err
	}

	return errors.Wrap(p.mailer.SendPasswordResetEmail(ctx, account.Email, link), "failed to send password reset email")
}

func (p *localProvider) actionLink(uid string, mode service.ActionMode) (string, error) {
	code, err := p.tokens.GenerateActionToken(uid, mode)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue action code")
	}

	query := url.Values{}
	query.Set("mode", string(mode))
	query.Set("oobCode", code)

	return p.baseURL + actionPath + "?" + query.Encode(), nil
}

// SignOut rejects every token issued to uid so far.
func (p *localProvider) SignOut(ctx context.Context, uid string) error {
	err := p.accounts.RevokeTokens(ctx, uid, p.now().UTC().Truncate(time.Second))
	if err != nil {
		return mapAccountError(err)
	}

	return nil
}

// ApplyActionCode consumes an emailed link. A reset also signs out every device.
func (p *localProvider) ApplyActionCode(ctx context.Context, mode service.ActionMode, code, newPassword string) error {
	claims, err := p.tokens.ValidateToken(code, service.TokenTypeAction)
	if err != nil || claims.Mode != mode {
		return domainerrors.ErrActionCodeInvalid
	}

	uid := claims.Subject
	switch mode {
	case service.ActionVerifyEmail:
		if err := p.accounts.MarkVerified(ctx, uid); err != nil {
			return mapActionError(err)
		}
		p.log(ctx).Info("Email verified", slog.String("uid", uid))

		return nil

	case service.ActionResetPassword:
		hash, err := p.hasher.Hash(newPassword)
		if err != nil {
			return err
		}
		if err := p.accounts.SetPassword(ctx, uid, hash, p.now().UTC().Truncate(time.Second)); err != nil {
			return mapActionError(err)
		}
		p.log(ctx).Info("Password reset", slog.String("uid", uid))

		return nil

	default:
		return domainerrors.ErrActionCodeInvalid
	}
}

func toIdentity(account *entity.Account) *entity.Identity {
	return &entity.Identity{
		UID:           account.UID,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapAccountError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound
	}

	return errors.Wrap(err, "account store failed")
}

func mapActionError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrActionCodeInvalid
	}

	return errors.Wrap(err, "account store failed")
}

var _ service.ActionCodeHandler = (*localProvider)(nil)
