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
	"github.com/stretchr/testify/require"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	httpMocks "github.com/bearodactyl/apiodactyl/internal/auth/http/mocks"
)

func TestRunListKeys(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Now().UTC()
	lastUsed := now.Add(-time.Hour)

	adminKey := &authDomain.APIKey{
		ID:         uuid.New(),
		KeyHash:    strings.Repeat("a", 64),
		IsAdmin:    true,
		CreatedAt:  now,
		LastUsedAt: &lastUsed,
	}
	regularKey := &authDomain.APIKey{
		ID:        uuid.New(),
		KeyHash:   strings.Repeat("b", 64),
		IsAdmin:   false,
		CreatedAt: now,
	}

	t.Run("all-keys-text", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		mockUseCase.On("List", ctx).Return([]*authDomain.APIKey{adminKey, regularKey}, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunListKeys(ctx, mockUseCase, logger, false, "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), adminKey.ID.String())
		require.Contains(t, out.String(), regularKey.ID.String())
		require.Contains(t, out.String(), "last_used=never")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("admin-only-filters", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		mockUseCase.On("List", ctx).Return([]*authDomain.APIKey{adminKey, regularKey}, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunListKeys(ctx, mockUseCase, logger, true, "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), adminKey.ID.String())
		require.NotContains(t, out.String(), regularKey.ID.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-format", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		mockUseCase.On("List", ctx).Return([]*authDomain.APIKey{adminKey}, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunListKeys(ctx, mockUseCase, logger, false, "json", io)

		require.NoError(t, err)

		var results []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &results))
		require.Len(t, results, 1)
		require.Equal(t, adminKey.ID.String(), results[0]["id"])
		require.Equal(t, adminKey.KeyHash, results[0]["key_hash"])
		require.Equal(t, true, results[0]["is_admin"])
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-list", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		mockUseCase.On("List", ctx).Return([]*authDomain.APIKey{}, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunListKeys(ctx, mockUseCase, logger, false, "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "No API keys found.")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("store-failure", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAPIKeyUseCase{}
		mockUseCase.On("List", ctx).Return(nil, authDomain.WrapDatabase(assert.AnError))

		var out bytes.Buffer
		io := IOTuple{
			Reader: nil,
			Writer: &out,
		}

		err := RunListKeys(ctx, mockUseCase, logger, false, "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to list api keys")
		mockUseCase.AssertExpectations(t)
	})
}
