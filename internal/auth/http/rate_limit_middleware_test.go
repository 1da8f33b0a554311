package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	"github.com/bearodactyl/apiodactyl/internal/auth/http/mocks"
)

func TestRateLimitMiddleware(t *testing.T) {
	newLimitedRouter := func(mockUC *mocks.MockAPIKeyUseCase, rps float64, burst int) *gin.Engine {
		router := gin.New()
		router.Use(AuthenticationMiddleware(mockUC, createTestLogger()))
		router.Use(RateLimitMiddleware(rps, burst, createTestLogger()))
		router.GET("/limited", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("Success_WithinBurst", func(t *testing.T) {
		mockUC := &mocks.MockAPIKeyUseCase{}
		apiKey := &authDomain.APIKey{
			ID:        uuid.Must(uuid.NewV7()),
			CreatedAt: time.Now().UTC(),
		}

		mockUC.On("Validate", mock.Anything, "ak_valid").Return(apiKey, nil)
		mockUC.On("UpdateLastUsed", mock.Anything, apiKey.ID).Return(nil).Maybe()

		router := newLimitedRouter(mockUC, 1, 3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/limited", nil)
			req.Header.Set("Authorization", "Bearer ak_valid")
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
		}
	})

	t.Run("Error_BurstExceeded", func(t *testing.T) {
		mockUC := &mocks.MockAPIKeyUseCase{}
		apiKey := &authDomain.APIKey{
			ID:        uuid.Must(uuid.NewV7()),
			CreatedAt: time.Now().UTC(),
		}

		mockUC.On("Validate", mock.Anything, "ak_valid").Return(apiKey, nil)
		mockUC.On("UpdateLastUsed", mock.Anything, apiKey.ID).Return(nil).Maybe()

		router := newLimitedRouter(mockUC, 0.001, 1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer ak_valid")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer ak_valid")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Success_KeysAreLimitedIndependently", func(t *testing.T) {
		mockUC := &mocks.MockAPIKeyUseCase{}
		firstKey := &authDomain.APIKey{ID: uuid.Must(uuid.NewV7()), CreatedAt: time.Now().UTC()}
		secondKey := &authDomain.APIKey{ID: uuid.Must(uuid.NewV7()), CreatedAt: time.Now().UTC()}

		mockUC.On("Validate", mock.Anything, "ak_first").Return(firstKey, nil)
		mockUC.On("Validate", mock.Anything, "ak_second").Return(secondKey, nil)
		mockUC.On("UpdateLastUsed", mock.Anything, mock.Anything).Return(nil).Maybe()

		router := newLimitedRouter(mockUC, 0.001, 1)

		// Exhaust the first key's bucket.
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer ak_first")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer ak_first")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)

		// The second key still has its own bucket.
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("Authorization", "Bearer ak_second")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
