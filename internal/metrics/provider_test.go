package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProvider", func(t *testing.T) {
		provider, err := NewProvider("apiodactyl")

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.NotNil(t, provider.MeterProvider())
	})
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("apiodactyl")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text")
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_Shutdown", func(t *testing.T) {
		provider, err := NewProvider("apiodactyl")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilMeterProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
