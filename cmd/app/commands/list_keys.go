package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
)

// RunListKeys lists API key credentials for administrative auditing. Only the
// digest of each key is available; the plaintext is never stored. When
// adminOnly is set, credentials without the admin flag are filtered out.
//
// Requirements: Database must be migrated and accessible.
func RunListKeys(
	ctx context.Context,
	apiKeyUseCase authUseCase.APIKeyUseCase,
	logger *slog.Logger,
	adminOnly bool,
	format string,
	io IOTuple,
) error {
	apiKeys, err := apiKeyUseCase.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list api keys: %w", err)
	}

	if adminOnly {
		filtered := make([]*authDomain.APIKey, 0, len(apiKeys))
		for _, apiKey := range apiKeys {
			if apiKey.IsAdmin {
				filtered = append(filtered, apiKey)
			}
		}
		apiKeys = filtered
	}

	if format == "json" {
		results := make([]map[string]any, 0, len(apiKeys))
		for _, apiKey := range apiKeys {
			results = append(results, map[string]any{
				"id":           apiKey.ID.String(),
				"key_hash":     apiKey.KeyHash,
				"is_admin":     apiKey.IsAdmin,
				"created_at":   apiKey.CreatedAt,
				"last_used_at": apiKey.LastUsedAt,
			})
		}
		outputJSON(results, io.Writer)
	} else {
		outputListKeysText(apiKeys, io.Writer)
	}

	logger.Info("api keys listed",
		slog.Int("count", len(apiKeys)),
		slog.Bool("admin_only", adminOnly),
	)

	return nil
}

// outputListKeysText outputs the credentials in human-readable text format.
func outputListKeysText(apiKeys []*authDomain.APIKey, writer io.Writer) {
	if len(apiKeys) == 0 {
		_, _ = fmt.Fprintln(writer, "No API keys found.")
		return
	}

	for _, apiKey := range apiKeys {
		lastUsed := "never"
		if apiKey.LastUsedAt != nil {
			lastUsed = apiKey.LastUsedAt.Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(
			writer,
			"%s  digest=%s  admin=%t  created=%s  last_used=%s\n",
			apiKey.ID.String(),
			apiKey.KeyHash,
			apiKey.IsAdmin,
			apiKey.CreatedAt.Format(time.RFC3339),
			lastUsed,
		)
	}
}
