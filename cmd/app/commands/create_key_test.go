package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	httpMocks "github.com/bearodactyl/apiodactyl/internal/auth/http/mocks"
	authService "github.com/bearodactyl/apiodactyl/internal/auth/service"
)

func TestRunCreateKey(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	keyService := authService.NewKeyService()
	apiKeyID := uuid.New()

	t.Run("custom-key-text", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		plainKey := "ak_customkey01234567890123456789012"
		apiKey := &authDomain.APIKey{
			ID:        apiKeyID,
			KeyHash:   keyService.HashKey(plainKey),
			IsAdmin:   true,
			CreatedAt: time.Now().UTC(),
		}

		mockUseCase.On("Create", ctx, plainKey, true).Return(apiKey, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunCreateKey(ctx, mockUseCase, keyService, logger, plainKey, true, "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), apiKeyID.String())
		require.Contains(t, out.String(), plainKey)
		require.Contains(t, out.String(), "shown only once")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("generated-key-json", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		apiKey := &authDomain.APIKey{
			ID:        apiKeyID,
			KeyHash:   strings.Repeat("a", 64),
			IsAdmin:   false,
			CreatedAt: time.Now().UTC(),
		}

		mockUseCase.On(
			"Create",
			ctx,
			mock.MatchedBy(func(plainKey string) bool {
				return strings.HasPrefix(plainKey, "ak_") && len(plainKey) == 35
			}),
			false,
		).Return(apiKey, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunCreateKey(ctx, mockUseCase, keyService, logger, "", false, "json", io)

		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, apiKeyID.String(), result["id"])
		require.Equal(t, false, result["is_admin"])

		generatedKey, ok := result["key"].(string)
		require.True(t, ok)
		require.True(t, strings.HasPrefix(generatedKey, "ak_"))
		require.Len(t, generatedKey, 35)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("create-failure", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		plainKey := "ak_customkey01234567890123456789012"

		mockUseCase.On("Create", ctx, plainKey, false).
			Return(nil, authDomain.WrapDatabase(assert.AnError))

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunCreateKey(ctx, mockUseCase, keyService, logger, plainKey, false, "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create api key")
		mockUseCase.AssertExpectations(t)
	})
}
