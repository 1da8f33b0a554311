package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bearodactyl/apiodactyl/internal/auth/http/dto"
	authService "github.com/bearodactyl/apiodactyl/internal/auth/service"
	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
	"github.com/bearodactyl/apiodactyl/internal/httputil"
	customValidation "github.com/bearodactyl/apiodactyl/internal/validation"
)

// APIKeyHandler handles HTTP requests for API key management. All routes are
// admin-gated at the router level.
type APIKeyHandler struct {
	apiKeyUseCase authUseCase.APIKeyUseCase
	keyService    authService.KeyService
	logger        *slog.Logger
}

// NewAPIKeyHandler creates a new API key handler with required dependencies.
func NewAPIKeyHandler(
	apiKeyUseCase authUseCase.APIKeyUseCase,
	keyService authService.KeyService,
	logger *slog.Logger,
) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyUseCase: apiKeyUseCase,
		keyService:    keyService,
		logger:        logger,
	}
}

// CreateHandler creates a new API key.
// POST /v1/keys - Returns 201 Created with the plaintext key, shown once.
func (h *APIKeyHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAPIKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plainKey := req.Key
	if plainKey == "" {
		plainKey = h.keyService.GenerateKey()
	}

	apiKey, err := h.apiKeyUseCase.Create(c.Request.Context(), plainKey, req.IsAdmin)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateAPIKeyResponse{
		ID:        apiKey.ID.String(),
		Key:       plainKey,
		IsAdmin:   apiKey.IsAdmin,
		CreatedAt: apiKey.CreatedAt,
	})
}

// ListHandler lists every stored credential.
// GET /v1/keys - Returns 200 OK with digests, never plaintext.
func (h *APIKeyHandler) ListHandler(c *gin.Context) {
	apiKeys, err := h.apiKeyUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAPIKeysToListResponse(apiKeys))
}

// RevokeHandler revokes an API key by its plaintext.
// DELETE /v1/keys - Returns 204 No Content. Revoking an unknown key is also
// 204: the outcome the caller asked for already holds.
func (h *APIKeyHandler) RevokeHandler(c *gin.Context) {
	var req dto.RevokeAPIKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.apiKeyUseCase.Revoke(c.Request.Context(), req.Key); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
