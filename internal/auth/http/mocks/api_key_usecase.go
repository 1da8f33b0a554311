// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
)

// MockAPIKeyUseCase is a mock implementation of APIKeyUseCase for testing.
type MockAPIKeyUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) Validate(ctx context.Context, plainKey string) (*authDomain.APIKey, error) {
	args := m.Called(ctx, plainKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.APIKey), args.Error(1)
}

// Create mocks the Create method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) Create(
	ctx context.Context,
	plainKey string,
	isAdmin bool,
) (*authDomain.APIKey, error) {
	args := m.Called(ctx, plainKey, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.APIKey), args.Error(1)
}

// Revoke mocks the Revoke method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) Revoke(ctx context.Context, plainKey string) error {
	args := m.Called(ctx, plainKey)
	return args.Error(0)
}

// List mocks the List method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) List(ctx context.Context) ([]*authDomain.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*authDomain.APIKey), args.Error(1)
}

// UpdateLastUsed mocks the UpdateLastUsed method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) UpdateLastUsed(ctx context.Context, apiKeyID uuid.UUID) error {
	args := m.Called(ctx, apiKeyID)
	return args.Error(0)
}

// EnsureAdminExists mocks the EnsureAdminExists method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) EnsureAdminExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CleanupCache mocks the CleanupCache method of APIKeyUseCase.
func (m *MockAPIKeyUseCase) CleanupCache() {
	m.Called()
}
