// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/bearodactyl/apiodactyl/internal/validation"
)

// CreateAPIKeyRequest contains the parameters for creating a new API key.
// Key is optional: when omitted a random key is generated server-side.
type CreateAPIKeyRequest struct {
	Key     string `json:"key,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// Validate checks if the create request is valid. A supplied key must be
// non-blank and of sane length; an absent key is fine.
func (r *CreateAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.When(r.Key != "",
				customValidation.NotBlank,
				validation.Length(8, 255),
			),
		),
	)
}

// RevokeAPIKeyRequest contains the plaintext key to revoke.
type RevokeAPIKeyRequest struct {
	Key string `json:"key"`
}

// Validate checks if the revoke request is valid.
func (r *RevokeAPIKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}
