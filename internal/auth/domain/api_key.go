// Package domain defines the API key credential model and authorization rules.
//
// Authentication is bearer-token based: callers present a plaintext key, the
// service looks it up by SHA-256 digest and produces a Principal carrying the
// matching credential. The admin capability is a boolean flag fixed at key
// creation; there is no path to change it afterwards.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a stored credential record. The plaintext key is never persisted;
// KeyHash holds its SHA-256 digest and is unique in the store.
type APIKey struct {
	ID         uuid.UUID
	KeyHash    string
	IsAdmin    bool
	CreatedAt  time.Time
	LastUsedAt *time.Time
}

// Principal is the validated, in-memory representation of an authenticated
// caller. It wraps the credential record produced by a successful validation.
type Principal struct {
	apiKey *APIKey
}

// NewPrincipal wraps a validated API key record.
func NewPrincipal(apiKey *APIKey) *Principal {
	return &Principal{apiKey: apiKey}
}

// ID returns the identifier of the underlying credential.
func (p *Principal) ID() uuid.UUID {
	return p.apiKey.ID
}

// IsAdmin reports whether the credential carries the admin capability.
func (p *Principal) IsAdmin() bool {
	return p.apiKey.IsAdmin
}

// CreatedAt returns the credential's creation time.
func (p *Principal) CreatedAt() time.Time {
	return p.apiKey.CreatedAt
}

// LastUsedAt returns the credential's last-used time, nil if never used.
func (p *Principal) LastUsedAt() *time.Time {
	return p.apiKey.LastUsedAt
}

// APIKey returns the underlying credential record.
func (p *Principal) APIKey() *APIKey {
	return p.apiKey
}

// RequireAdmin performs the admin capability check, producing an AdminPrincipal
// on success and ErrInsufficientPermissions otherwise.
func (p *Principal) RequireAdmin() (*AdminPrincipal, error) {
	if !p.IsAdmin() {
		return nil, ErrInsufficientPermissions
	}
	return &AdminPrincipal{Principal: p}, nil
}

// AdminPrincipal is a principal whose admin capability check has already
// succeeded. It embeds Principal, so every operation available on a Principal
// remains available; downstream code holding an AdminPrincipal need not
// re-check the capability.
type AdminPrincipal struct {
	*Principal
}
