package commands

import (
	"context"
	"fmt"
	"log/slog"

	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
)

// RunRevokeKey revokes an API key credential by its plaintext value. The
// outcome is the same whether or not the key existed: the key can no longer
// authenticate.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeKey(
	ctx context.Context,
	apiKeyUseCase authUseCase.APIKeyUseCase,
	logger *slog.Logger,
	plainKey string,
	format string,
	io IOTuple,
) error {
	logger.Info("revoking api key")

	if err := apiKeyUseCase.Revoke(ctx, plainKey); err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}

	if format == "json" {
		outputJSON(map[string]any{"revoked": true}, io.Writer)
	} else {
		_, _ = fmt.Fprintln(io.Writer, "API key revoked.")
	}

	logger.Info("api key revoked successfully")
	return nil
}
