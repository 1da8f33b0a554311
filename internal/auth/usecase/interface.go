// Package usecase defines business logic interfaces for API key operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
)

// APIKeyRepository defines persistence operations for API key credentials.
// Implementations must support transaction-aware operations via context propagation.
type APIKeyRepository interface {
	// Create stores a new API key record. The store enforces digest uniqueness.
	Create(ctx context.Context, apiKey *authDomain.APIKey) error

	// GetByKeyHash retrieves a record by digest. Returns ErrAPIKeyNotFound if
	// no record matches.
	GetByKeyHash(ctx context.Context, keyHash string) (*authDomain.APIKey, error)

	// UpdateLastUsed sets the last-used timestamp of the record with the given ID.
	UpdateLastUsed(ctx context.Context, apiKeyID uuid.UUID, lastUsedAt time.Time) error

	// DeleteByKeyHash removes the record with the given digest; deleting an
	// absent digest is not an error.
	DeleteByKeyHash(ctx context.Context, keyHash string) error

	// List retrieves every record.
	List(ctx context.Context) ([]*authDomain.APIKey, error)

	// CountAdmins returns the number of records carrying the admin flag.
	CountAdmins(ctx context.Context) (int64, error)
}

// APIKeyUseCase defines business logic operations for API key credentials.
//
// Validate is the hot path: a cache hit completes without touching the store,
// and a miss falls through to the store and fills the cache. Revoke purges the
// cache unconditionally so a revoked key can never outlive its record.
type APIKeyUseCase interface {
	// Validate resolves a plaintext key into its credential record.
	// Returns ErrInvalidKey for an unknown key and ErrDatabase when the store
	// fails; callers can always tell the two apart.
	Validate(ctx context.Context, plainKey string) (*authDomain.APIKey, error)

	// Create persists a new credential with the given admin capability and
	// caches it under its digest. The plaintext is never stored.
	Create(ctx context.Context, plainKey string, isAdmin bool) (*authDomain.APIKey, error)

	// Revoke deletes the credential matching the plaintext and purges its
	// cache entry. Revocation takes effect immediately, not after cache TTL.
	Revoke(ctx context.Context, plainKey string) error

	// List enumerates every credential for administrative auditing.
	List(ctx context.Context) ([]*authDomain.APIKey, error)

	// UpdateLastUsed stamps the credential's last-used time with "now".
	// Best-effort: callers running it after a successful validation treat
	// failure as non-fatal.
	UpdateLastUsed(ctx context.Context, apiKeyID uuid.UUID) error

	// EnsureAdminExists provisions a bootstrap admin credential when none
	// exists and a bootstrap key is configured. Safe to call on every start.
	EnsureAdminExists(ctx context.Context) error

	// CleanupCache sweeps expired cache entries. Invoked by an external
	// periodic trigger owned by the server.
	CleanupCache()
}
