// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	apperrors "github.com/bearodactyl/apiodactyl/internal/errors"
)

// ErrorResponse is the JSON error body. The status code is repeated in the
// body so clients parsing only the payload still see it.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON
// error response. Authentication failures all map to 401, authorization
// failures to 403, validation failures to 422, and store failures to 500
// with no internal details exposed.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, authDomain.ErrMissingHeader):
		statusCode = http.StatusUnauthorized
		message = "Missing Authorization header"

	case apperrors.Is(err, authDomain.ErrInvalidFormat):
		statusCode = http.StatusUnauthorized
		message = "Invalid Authorization header format"

	case apperrors.Is(err, authDomain.ErrInvalidKey):
		statusCode = http.StatusUnauthorized
		message = "Invalid API key"

	case apperrors.Is(err, authDomain.ErrInsufficientPermissions):
		statusCode = http.StatusForbidden
		message = "Insufficient permissions"

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()

	default:
		// Covers ErrDatabase and anything unexpected; details stay server-side.
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, ErrorResponse{Error: message, Status: statusCode})
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON
// or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  err.Error(),
		Status: http.StatusBadRequest,
	})
}
