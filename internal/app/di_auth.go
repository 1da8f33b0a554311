package app

import (
	"fmt"

	authCache "github.com/bearodactyl/apiodactyl/internal/auth/cache"
	authRepository "github.com/bearodactyl/apiodactyl/internal/auth/repository"
	authService "github.com/bearodactyl/apiodactyl/internal/auth/service"
	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
)

// KeyService returns the key generation and hashing service.
func (c *Container) KeyService() authService.KeyService {
	c.keyServiceInit.Do(func() {
		c.keyService = authService.NewKeyService()
	})
	return c.keyService
}

// KeyCache returns the shared validated-key cache. There is exactly one cache
// per container so revocations are visible to every consumer.
func (c *Container) KeyCache() *authCache.KeyCache {
	c.keyCacheInit.Do(func() {
		c.keyCache = authCache.NewKeyCache(c.config.AuthCacheTTL)
	})
	return c.keyCache
}

// APIKeyRepository returns the API key repository for the configured driver.
func (c *Container) APIKeyRepository() (authUseCase.APIKeyRepository, error) {
	c.apiKeyRepoInit.Do(func() {
		repo, err := c.initAPIKeyRepository()
		if err != nil {
			c.initErrors["apiKeyRepo"] = err
			return
		}
		c.apiKeyRepo = repo
	})
	if storedErr, exists := c.initErrors["apiKeyRepo"]; exists {
		return nil, storedErr
	}
	return c.apiKeyRepo, nil
}

// APIKeyUseCase returns the API key use case, wrapped with metrics when enabled.
func (c *Container) APIKeyUseCase() (authUseCase.APIKeyUseCase, error) {
	c.apiKeyUseCaseInit.Do(func() {
		useCase, err := c.initAPIKeyUseCase()
		if err != nil {
			c.initErrors["apiKeyUseCase"] = err
			return
		}
		c.apiKeyUseCase = useCase
	})
	if storedErr, exists := c.initErrors["apiKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.apiKeyUseCase, nil
}

// initAPIKeyRepository selects the repository implementation by database driver.
func (c *Container) initAPIKeyRepository() (authUseCase.APIKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for api key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLAPIKeyRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLAPIKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAPIKeyUseCase assembles the use case with its repository, cache and
// key service, adding the metrics decorator when a recorder is available.
func (c *Container) initAPIKeyUseCase() (authUseCase.APIKeyUseCase, error) {
	repo, err := c.APIKeyRepository()
	if err != nil {
		return nil, err
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, err
	}

	useCase := authUseCase.NewAPIKeyUseCase(
		c.config,
		repo,
		c.KeyCache(),
		c.KeyService(),
		txManager,
		c.Logger(),
	)

	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	return authUseCase.NewAPIKeyUseCaseWithMetrics(useCase, bm), nil
}
