package service

// MinPasswordLength is the shortest password, in characters, either identity backend accepts.
const MinPasswordLength = 6

// PasswordHasher hashes the passwords of accounts held by the local identity backend.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Passwords shorter than MinPasswordLength
	// fail with ErrWeakPassword.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
