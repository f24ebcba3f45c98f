// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"canteen/config"
	"canteen/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 30 * 24 * time.Hour
	defaultActionTTL  = 24 * time.Hour
	issuer            = "canteen"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secrets map[string][]byte        // Signing key per token type.
	ttls    map[string]time.Duration // Time-to-live per token type.
	now     func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg)
}

func newJWTService(cfg *config.Config) (*jwtService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" || cfg.SecretKey.Action == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	s := &jwtService{
		secrets: map[string][]byte{
			service.TokenTypeAccess:  []byte(cfg.SecretKey.Access),
			service.TokenTypeRefresh: []byte(cfg.SecretKey.Refresh),
			service.TokenTypeAction:  []byte(cfg.SecretKey.Action),
		},
		ttls: map[string]time.Duration{
			service.TokenTypeAccess:  defaultAccessTTL,
			service.TokenTypeRefresh: defaultRefreshTTL,
			service.TokenTypeAction:  defaultActionTTL,
		},
		now: time.Now,
	}
	if local := cfg.Local; local != nil {
		if local.AccessTokenTTL > 0 {
			s.ttls[service.TokenTypeAccess] = local.AccessTokenTTL
		}
		if local.RefreshTokenTTL > 0 {
			s.ttls[service.TokenTypeRefresh] = local.RefreshTokenTTL
		}
		if local.ActionTokenTTL > 0 {
			s.ttls[service.TokenTypeAction] = local.ActionTokenTTL
		}
	}

	return s, nil
}

// GenerateTokens creates a new access token and refresh token for a given identity.
func (s *jwtService) GenerateTokens(uid, email string, emailVerified bool) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(uid, service.Claims{
		Email:         email,
		EmailVerified: emailVerified,
		Type:          service.TokenTypeAccess,
	})
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(uid, service.Claims{Type: service.TokenTypeRefresh})
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateActionToken creates a short-lived token embedded in email links.
func (s *jwtService) GenerateActionToken(uid string, mode service.ActionMode) (string, error) {
	return s.generateToken(uid, service.Claims{Type: service.TokenTypeAction, Mode: mode})
}

// ValidateToken parses a token of the expected type and checks its signature, expiry and type.
func (s *jwtService) ValidateToken(tokenString, tokenType string) (*service.Claims, error) {
	secret, ok := s.secrets[tokenType]
	if !ok {
		return nil, errors.Errorf("unknown token type: %s", tokenType)
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type: %s", claims.Type)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.ttls[service.TokenTypeAccess]
}

// generateToken signs claims for uid with the key of claims.Type.
func (s *jwtService) generateToken(uid string, claims service.Claims) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttls[claims.Type])),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secrets[claims.Type])
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
