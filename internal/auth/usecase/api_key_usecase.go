// Package usecase implements business logic orchestration for API key operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	authCache "github.com/bearodactyl/apiodactyl/internal/auth/cache"
	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	authService "github.com/bearodactyl/apiodactyl/internal/auth/service"
	"github.com/bearodactyl/apiodactyl/internal/config"
	"github.com/bearodactyl/apiodactyl/internal/database"
)

// apiKeyUseCase implements APIKeyUseCase backed by a repository and a shared
// digest cache. The cache is owned here and must not be duplicated: every
// handle to this use case sees the same cache, otherwise a revoke on one
// handle would leave stale entries alive in another.
type apiKeyUseCase struct {
	config     *config.Config
	apiKeyRepo APIKeyRepository
	cache      *authCache.KeyCache
	keyService authService.KeyService
	txManager  database.TxManager
	logger     *slog.Logger
}

// Validate resolves a plaintext key into its credential record.
//
// Algorithm: compute the digest, then check the cache. A hit returns without
// touching the store. A miss queries the store by digest; a missing record is
// ErrInvalidKey, a store failure is ErrDatabase, and a hit fills the cache so
// the next lookup for the same digest is served from memory.
//
// Concurrent validations of a never-seen key may each query the store once;
// there is no single-flight protection on the miss path.
func (a *apiKeyUseCase) Validate(ctx context.Context, plainKey string) (*authDomain.APIKey, error) {
	keyHash := a.keyService.HashKey(plainKey)

	if apiKey, ok := a.cache.Get(keyHash); ok {
		return apiKey, nil
	}

	apiKey, err := a.apiKeyRepo.GetByKeyHash(ctx, keyHash)
	if err != nil {
		if errors.Is(err, authDomain.ErrAPIKeyNotFound) {
			return nil, authDomain.ErrInvalidKey
		}
		return nil, authDomain.WrapDatabase(err)
	}

	a.cache.Insert(keyHash, apiKey)

	return apiKey, nil
}

// Create persists a new credential and caches it under its digest.
// A digest collision with an existing record is rejected by the store's
// uniqueness constraint and surfaces as ErrDatabase.
func (a *apiKeyUseCase) Create(
	ctx context.Context,
	plainKey string,
	isAdmin bool,
) (*authDomain.APIKey, error) {
	keyHash := a.keyService.HashKey(plainKey)

	apiKey := &authDomain.APIKey{
		ID:         uuid.Must(uuid.NewV7()),
		KeyHash:    keyHash,
		IsAdmin:    isAdmin,
		CreatedAt:  time.Now().UTC(),
		LastUsedAt: nil,
	}

	if err := a.apiKeyRepo.Create(ctx, apiKey); err != nil {
		return nil, authDomain.WrapDatabase(err)
	}

	a.cache.Insert(keyHash, apiKey)

	return apiKey, nil
}

// Revoke deletes the credential matching the plaintext from the store and
// purges its digest from the cache. The purge runs even when the store delete
// fails or matched no record: a surviving cache entry would keep a revoked
// key valid for up to one TTL window.
func (a *apiKeyUseCase) Revoke(ctx context.Context, plainKey string) error {
	keyHash := a.keyService.HashKey(plainKey)

	err := a.apiKeyRepo.DeleteByKeyHash(ctx, keyHash)

	a.cache.Remove(keyHash)

	if err != nil {
		return authDomain.WrapDatabase(err)
	}
	return nil
}

// List enumerates every credential, unfiltered.
func (a *apiKeyUseCase) List(ctx context.Context) ([]*authDomain.APIKey, error) {
	apiKeys, err := a.apiKeyRepo.List(ctx)
	if err != nil {
		return nil, authDomain.WrapDatabase(err)
	}
	return apiKeys, nil
}

// UpdateLastUsed stamps the credential's last-used time with "now" in the
// store. The admission decision for the triggering request has already been
// made by the time this runs, so the caller is free to discard the error.
func (a *apiKeyUseCase) UpdateLastUsed(ctx context.Context, apiKeyID uuid.UUID) error {
	if err := a.apiKeyRepo.UpdateLastUsed(ctx, apiKeyID, time.Now().UTC()); err != nil {
		return authDomain.WrapDatabase(err)
	}
	return nil
}

// EnsureAdminExists provisions the first admin credential on startup.
//
// If any admin record exists this is a no-op, so it is safe to call on every
// process start. With zero admins and a configured bootstrap key, an admin
// credential is created from it and the operator is reminded to remove the
// key from the environment. With zero admins and no bootstrap key, the system
// stays admin-less until an operator intervenes via the CLI.
//
// The count and the create run in one transaction so two processes starting
// at the same time cannot both observe zero admins and bootstrap twice.
func (a *apiKeyUseCase) EnsureAdminExists(ctx context.Context) error {
	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		adminCount, err := a.apiKeyRepo.CountAdmins(ctx)
		if err != nil {
			return authDomain.WrapDatabase(err)
		}

		if adminCount > 0 {
			return nil
		}

		if a.config.BootstrapAdminKey == "" {
			a.logger.Warn("no admin api keys exist and no BOOTSTRAP_ADMIN_KEY provided",
				slog.String("hint", "set BOOTSTRAP_ADMIN_KEY or use the create-key CLI command"))
			return nil
		}

		a.logger.Info("creating bootstrap admin api key")

		apiKey, err := a.Create(ctx, a.config.BootstrapAdminKey, true)
		if err != nil {
			a.logger.Error("failed to create bootstrap admin api key", slog.Any("error", err))
			return err
		}

		a.logger.Info("bootstrap admin api key created",
			slog.String("api_key_id", apiKey.ID.String()),
			slog.String("reminder", "remove BOOTSTRAP_ADMIN_KEY from the environment"))

		return nil
	})
	if err != nil && !errors.Is(err, authDomain.ErrDatabase) {
		// Begin and commit failures arrive unmapped from the tx manager.
		return authDomain.WrapDatabase(err)
	}
	return err
}

// CleanupCache sweeps expired cache entries.
func (a *apiKeyUseCase) CleanupCache() {
	a.cache.Cleanup()
}

// NewAPIKeyUseCase creates a new APIKeyUseCase with the provided dependencies.
func NewAPIKeyUseCase(
	cfg *config.Config,
	apiKeyRepo APIKeyRepository,
	cache *authCache.KeyCache,
	keyService authService.KeyService,
	txManager database.TxManager,
	logger *slog.Logger,
) APIKeyUseCase {
	return &apiKeyUseCase{
		config:     cfg,
		apiKeyRepo: apiKeyRepo,
		cache:      cache,
		keyService: keyService,
		txManager:  txManager,
		logger:     logger,
	}
}
