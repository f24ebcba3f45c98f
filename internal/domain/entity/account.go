package entity

import "time"

// Account is a credential record kept by the self-hosted identity provider.
type Account struct {
	UID           string
	Email         string // Normalized to lower case.
	PasswordHash  string
	DisplayName   string
	EmailVerified bool
	// TokensValidAfter rejects every token issued before it. Second precision.
	TokensValidAfter time.Time
	CreatedAt        time.Time
}
