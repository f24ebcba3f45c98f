// Package service declares the ports the canteen use cases depend on: identity backends,
// notification delivery, mail and the stateless helpers behind them.
package service

import (
	"context"

	"canteen/internal/domain/entity"
)

// ActionMode selects what an out-of-band email link does.
type ActionMode string

const (
	ActionVerifyEmail   ActionMode = "verifyEmail"
	ActionResetPassword ActionMode = "resetPassword"
)

// IdentityProvider abstracts the external identity backend.
// Implementations return domain errors (ErrInvalidCredentials, ErrEmailInUse,
// ErrAccountNotFound, ErrTokenInvalid) and never leak provider error text.
type IdentityProvider interface {
	// SignUp creates the identity and signs it in.
	SignUp(ctx context.Context, email, password, displayName string) (*entity.Identity, *entity.AuthTokens, error)

	// SignIn exchanges email and password for tokens.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, *entity.AuthTokens, error)

	// Verify validates an ID token and returns the identity it was issued for.
	Verify(ctx context.Context, idToken string) (*entity.Identity, error)

	// Lookup re-reads the identity so callers observe a fresh verification flag.
	Lookup(ctx context.Context, uid string) (*entity.Identity, error)

	// LookupByEmail resolves an identity from its email address.
	LookupByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// SendVerificationEmail sends a verification link to the identity's address.
	SendVerificationEmail(ctx context.Context, uid string) error

	// SendPasswordResetEmail sends a reset link. Unknown addresses yield ErrAccountNotFound.
	SendPasswordResetEmail(ctx context.Context, email string) error

	// SignOut revokes every refresh token issued to uid.
	SignOut(ctx context.Context, uid string) error
}

// ActionCodeHandler is implemented by identity providers that consume their own email links.
// Hosted providers handle links on their own pages and do not implement it.
type ActionCodeHandler interface {
	ApplyActionCode(ctx context.Context, mode ActionMode, code, newPassword string) error
}
