// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the authenticated principal as reported by the identity provider.
type Identity struct {
	UID           string `json:"uid"`            // Provider-issued opaque user ID.
	Email         string `json:"email"`          // Primary email address.
	EmailVerified bool   `json:"email_verified"` // Whether the email address has been confirmed.
}

// AuthTokens are the credentials handed back to a client after sign-in.
type AuthTokens struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"` // Seconds until IDToken expires.
}

// UserProfile is the Users document keyed by the identity UID.
type UserProfile struct {
	ID         string `json:"id"`          // Same value as Identity.UID.
	Name       string `json:"name"`        // Display name.
	AdminCheck bool   `json:"admin_check"` // The privileged flag. The only source of admin rights.
}

// DisplayName returns the name to show for a UID when the profile may be missing.
// Missing profiles render as the first six characters of the UID followed by "...",
// and an empty UID renders as "Unknown".
func DisplayName(uid string, profile *UserProfile) string {
	if profile != nil && profile.Name != "" {
		return profile.Name
	}
	if uid == "" {
		return "Unknown"
	}
	if len(uid) <= 6 {
		return uid + "..."
	}

	return uid[:6] + "..."
}
