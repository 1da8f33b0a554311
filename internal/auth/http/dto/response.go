package dto

import (
	"time"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
)

// CreateAPIKeyResponse contains the result of creating an API key.
// SECURITY: the plaintext key is returned exactly once and never again.
type CreateAPIKeyResponse struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// APIKeyResponse represents a stored credential in API responses. Only the
// digest is exposed; the plaintext is unrecoverable.
type APIKeyResponse struct {
	ID         string     `json:"id"`
	KeyHash    string     `json:"key_hash"`
	IsAdmin    bool       `json:"is_admin"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// MapAPIKeyToResponse converts a domain record to an API response.
func MapAPIKeyToResponse(apiKey *authDomain.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:         apiKey.ID.String(),
		KeyHash:    apiKey.KeyHash,
		IsAdmin:    apiKey.IsAdmin,
		CreatedAt:  apiKey.CreatedAt,
		LastUsedAt: apiKey.LastUsedAt,
	}
}

// ListAPIKeysResponse represents a list of credentials in API responses.
type ListAPIKeysResponse struct {
	Data []APIKeyResponse `json:"data"`
}

// MapAPIKeysToListResponse converts domain records to a list API response.
func MapAPIKeysToListResponse(apiKeys []*authDomain.APIKey) ListAPIKeysResponse {
	responses := make([]APIKeyResponse, 0, len(apiKeys))
	for _, apiKey := range apiKeys {
		responses = append(responses, MapAPIKeyToResponse(apiKey))
	}
	return ListAPIKeysResponse{
		Data: responses,
	}
}
