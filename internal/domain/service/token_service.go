package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token types issued by the local identity provider.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeAction  = "action"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Email         string     `json:"email,omitempty"`
	EmailVerified bool       `json:"email_verified,omitempty"`
	Type          string     `json:"type"`
	Mode          ActionMode `json:"mode,omitempty"` // Set on action tokens only.
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given identity.
	GenerateTokens(uid, email string, emailVerified bool) (accessToken string, refreshToken string, err error)

	// GenerateActionToken creates a short-lived token embedded in email links.
	GenerateActionToken(uid string, mode ActionMode) (string, error)

	// ValidateToken checks the validity of a token string of the expected type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// GetAccessTokenDuration returns the configured duration for access tokens.
	GetAccessTokenDuration() time.Duration
}
