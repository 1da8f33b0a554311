package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	"github.com/bearodactyl/apiodactyl/internal/metrics"
)

// apiKeyUseCaseWithMetrics decorates APIKeyUseCase with metrics instrumentation.
type apiKeyUseCaseWithMetrics struct {
	next    APIKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewAPIKeyUseCaseWithMetrics wraps an APIKeyUseCase with metrics recording.
func NewAPIKeyUseCaseWithMetrics(useCase APIKeyUseCase, m metrics.BusinessMetrics) APIKeyUseCase {
	return &apiKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record reports one operation's status and duration under the auth domain.
func (a *apiKeyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// Validate records metrics for key validation operations.
func (a *apiKeyUseCaseWithMetrics) Validate(
	ctx context.Context,
	plainKey string,
) (*authDomain.APIKey, error) {
	start := time.Now()
	apiKey, err := a.next.Validate(ctx, plainKey)
	a.record(ctx, "key_validate", start, err)
	return apiKey, err
}

// Create records metrics for key creation operations.
func (a *apiKeyUseCaseWithMetrics) Create(
	ctx context.Context,
	plainKey string,
	isAdmin bool,
) (*authDomain.APIKey, error) {
	start := time.Now()
	apiKey, err := a.next.Create(ctx, plainKey, isAdmin)
	a.record(ctx, "key_create", start, err)
	return apiKey, err
}

// Revoke records metrics for key revocation operations.
func (a *apiKeyUseCaseWithMetrics) Revoke(ctx context.Context, plainKey string) error {
	start := time.Now()
	err := a.next.Revoke(ctx, plainKey)
	a.record(ctx, "key_revoke", start, err)
	return err
}

// List records metrics for key list operations.
func (a *apiKeyUseCaseWithMetrics) List(ctx context.Context) ([]*authDomain.APIKey, error) {
	start := time.Now()
	apiKeys, err := a.next.List(ctx)
	a.record(ctx, "key_list", start, err)
	return apiKeys, err
}

// UpdateLastUsed records metrics for last-used updates.
func (a *apiKeyUseCaseWithMetrics) UpdateLastUsed(ctx context.Context, apiKeyID uuid.UUID) error {
	start := time.Now()
	err := a.next.UpdateLastUsed(ctx, apiKeyID)
	a.record(ctx, "key_update_last_used", start, err)
	return err
}

// EnsureAdminExists records metrics for the bootstrap check.
func (a *apiKeyUseCaseWithMetrics) EnsureAdminExists(ctx context.Context) error {
	start := time.Now()
	err := a.next.EnsureAdminExists(ctx)
	a.record(ctx, "ensure_admin_exists", start, err)
	return err
}

// CleanupCache delegates to the wrapped use case; the sweep is not an
// externally observable business operation.
func (a *apiKeyUseCaseWithMetrics) CleanupCache() {
	a.next.CleanupCache()
}
