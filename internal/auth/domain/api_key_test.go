package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipal_Accessors(t *testing.T) {
	lastUsed := time.Now().UTC()
	apiKey := &APIKey{
		ID:         uuid.Must(uuid.NewV7()),
		KeyHash:    "hash1",
		IsAdmin:    true,
		CreatedAt:  time.Now().UTC(),
		LastUsedAt: &lastUsed,
	}

	principal := NewPrincipal(apiKey)

	assert.Equal(t, apiKey.ID, principal.ID())
	assert.True(t, principal.IsAdmin())
	assert.Equal(t, apiKey.CreatedAt, principal.CreatedAt())
	assert.Equal(t, &lastUsed, principal.LastUsedAt())
	assert.Same(t, apiKey, principal.APIKey())
}

func TestPrincipal_RequireAdmin(t *testing.T) {
	t.Run("admin key produces admin principal", func(t *testing.T) {
		principal := NewPrincipal(&APIKey{
			ID:        uuid.Must(uuid.NewV7()),
			KeyHash:   "hash1",
			IsAdmin:   true,
			CreatedAt: time.Now().UTC(),
		})

		admin, err := principal.RequireAdmin()
		require.NoError(t, err)
		require.NotNil(t, admin)

		// The refinement keeps every principal operation available.
		assert.Equal(t, principal.ID(), admin.ID())
		assert.True(t, admin.IsAdmin())
	})

	t.Run("regular key fails with insufficient permissions", func(t *testing.T) {
		principal := NewPrincipal(&APIKey{
			ID:        uuid.Must(uuid.NewV7()),
			KeyHash:   "hash2",
			IsAdmin:   false,
			CreatedAt: time.Now().UTC(),
		})

		admin, err := principal.RequireAdmin()
		assert.ErrorIs(t, err, ErrInsufficientPermissions)
		assert.Nil(t, admin)
	})
}

func TestWrapDatabase(t *testing.T) {
	cause := assert.AnError
	err := WrapDatabase(cause)

	assert.ErrorIs(t, err, ErrDatabase)
	assert.ErrorIs(t, err, cause)
}
