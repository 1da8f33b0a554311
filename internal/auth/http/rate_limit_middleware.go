package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	"github.com/bearodactyl/apiodactyl/internal/httputil"
)

// rateLimiterStore holds per-key rate limiters with periodic stale cleanup.
type rateLimiterStore struct {
	limiters sync.Map // map[uuid.UUID]*rateLimiterEntry
	rps      float64
	burst    int
}

// rateLimiterEntry pairs a limiter with its last access time.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// RateLimitMiddleware enforces per-key rate limiting on authenticated
// requests using a token bucket per credential ID.
//
// MUST run after AuthenticationMiddleware. Requests over the limit receive
// 429 Too Many Requests with a Retry-After header.
func RateLimitMiddleware(rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{
		rps:   rps,
		burst: burst,
	}

	go store.cleanupStale(context.Background(), 5*time.Minute)

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Error("rate limit middleware: no authenticated principal in context")
			httputil.HandleErrorGin(c, authDomain.ErrMissingHeader, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(principal.ID())

		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := int(reservation.Delay().Seconds())
			reservation.Cancel()

			logger.Debug("rate limit exceeded",
				slog.String("api_key_id", principal.ID().String()),
				slog.Int("retry_after", retryAfter))

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, httputil.ErrorResponse{
				Error:  "Too many requests",
				Status: http.StatusTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// getLimiter retrieves or creates the rate limiter for a credential.
func (s *rateLimiterStore) getLimiter(apiKeyID uuid.UUID) *rate.Limiter {
	if val, ok := s.limiters.Load(apiKeyID); ok {
		entry := val.(*rateLimiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
	s.limiters.Store(apiKeyID, &rateLimiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	})
	return limiter
}

// cleanupStale drops limiters not accessed in the last hour to bound memory.
func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			threshold := time.Now().Add(-1 * time.Hour)
			s.limiters.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimiterEntry)
				entry.mu.Lock()
				stale := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if stale {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}
