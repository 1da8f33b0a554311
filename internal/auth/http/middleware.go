package http

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
	"github.com/bearodactyl/apiodactyl/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via an API key in the
// Authorization header.
//
// The header must carry exactly "Bearer <key>": the scheme is matched
// case-sensitively with a single trailing space, so "bearer x" and "Bearer"
// alone are both malformed. The extracted key is validated through the use
// case and, on success, the resulting principal is stored in the request
// context for downstream handlers.
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Unknown key → 401 Unauthorized
//   - Store failure during validation → 500 Internal Server Error
//
// After a successful validation the credential's last-used timestamp is
// updated in a detached goroutine. The update never delays or fails the
// request; its admission decision is already made.
func AuthenticationMiddleware(
	apiKeyUseCase authUseCase.APIKeyUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrMissingHeader, logger)
			c.Abort()
			return
		}

		plainKey, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrInvalidFormat, logger)
			c.Abort()
			return
		}

		apiKey, err := apiKeyUseCase.Validate(c.Request.Context(), plainKey)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		principal := authDomain.NewPrincipal(apiKey)
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		// Detached from the request context so a client disconnect cannot
		// cancel the write.
		apiKeyID := principal.ID()
		go func() {
			if err := apiKeyUseCase.UpdateLastUsed(context.Background(), apiKeyID); err != nil {
				logger.Warn("failed to update last used timestamp",
					slog.String("api_key_id", apiKeyID.String()),
					slog.Any("error", err))
			}
		}()

		c.Next()
	}
}

// RequireAdminMiddleware gates a route group to admin principals.
//
// MUST run after AuthenticationMiddleware. Principals without the admin
// capability receive 403 Forbidden; on success the admin principal is stored
// in the request context alongside the plain principal.
func RequireAdminMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			// Only reachable if the middleware ordering is wrong.
			logger.Error("admin middleware: no authenticated principal in context")
			httputil.HandleErrorGin(c, authDomain.ErrMissingHeader, logger)
			c.Abort()
			return
		}

		admin, err := principal.RequireAdmin()
		if err != nil {
			logger.Debug("authorization failed",
				slog.String("api_key_id", principal.ID().String()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithAdminPrincipal(c.Request.Context(), admin)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
