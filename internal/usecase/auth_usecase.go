// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/service"
	"canteen/internal/usecase/session"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ApplyActionInput carries an out-of-band email link back to the identity provider.
type ApplyActionInput struct {
	Mode        service.ActionMode
	Code        string
	NewPassword string // Required for password resets.
}

// --- Output DTOs ---

// AuthOutput is returned after a successful sign-up or sign-in.
type AuthOutput struct {
	Tokens   *entity.AuthTokens
	Identity *entity.Identity
	Profile  *entity.UserProfile
	Landing  string // Client route to open next.
}

// AuthStatus is the freshly re-read state of a signed-in identity.
type AuthStatus struct {
	Identity *entity.Identity
	Profile  *entity.UserProfile
	Landing  string
}

// AuthUsecase defines sign-up, sign-in and the email flows around them.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// AdminSignIn signs in and requires the privileged flag. Customers get ErrAdminAccessDenied
	// and no session is kept.
	AdminSignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// Authenticate verifies an ID token and returns the caller's session, activating it on first use.
	Authenticate(ctx context.Context, idToken string) (*session.Session, error)

	SendVerificationEmail(ctx context.Context, uid string) error
	SendPasswordReset(ctx context.Context, email string) error
	ApplyAction(ctx context.Context, input *ApplyActionInput) error

	// Status re-reads the identity so a pending verification is observed.
	Status(ctx context.Context, uid string) (*AuthStatus, error)

	SignOut(ctx context.Context, uid string) error
}
