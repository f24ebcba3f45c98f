package auth

import (
	"strings"
	"testing"

	"canteen/config"
	domainerrors "canteen/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Local: &config.LocalConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secret1", "invalid_hash"))
}

func TestBcryptHasher_WeakPassword(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	for _, password := range []string{"", "12345", "äöü12"} {
		_, err := hasher.Hash(password)
		assert.ErrorIs(t, err, domainerrors.ErrWeakPassword, password)
	}

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(&config.Config{Local: &config.LocalConfig{BcryptCost: customCost}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Local: &config.LocalConfig{BcryptCost: 99}})

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
