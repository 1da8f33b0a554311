package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/bearodactyl/apiodactyl/internal/auth/service"
	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
)

// RunCreateKey creates a new API key credential. When customKey is empty a
// random key is generated. Outputs the credential ID and the plaintext key in
// either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateKey(
	ctx context.Context,
	apiKeyUseCase authUseCase.APIKeyUseCase,
	keyService authService.KeyService,
	logger *slog.Logger,
	customKey string,
	isAdmin bool,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new api key", slog.Bool("is_admin", isAdmin))

	plainKey := customKey
	if plainKey == "" {
		plainKey = keyService.GenerateKey()
	}

	apiKey, err := apiKeyUseCase.Create(ctx, plainKey, isAdmin)
	if err != nil {
		return fmt.Errorf("failed to create api key: %w", err)
	}

	if format == "json" {
		outputJSON(map[string]any{
			"id":         apiKey.ID.String(),
			"key":        plainKey,
			"is_admin":   apiKey.IsAdmin,
			"created_at": apiKey.CreatedAt,
		}, io.Writer)
	} else {
		outputCreateKeyText(apiKey.ID.String(), plainKey, apiKey.IsAdmin, io.Writer)
	}

	logger.Info("api key created successfully",
		slog.String("api_key_id", apiKey.ID.String()),
		slog.Bool("is_admin", apiKey.IsAdmin),
	)

	return nil
}

// outputCreateKeyText outputs the result in human-readable text format.
func outputCreateKeyText(id string, plainKey string, isAdmin bool, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nAPI key created successfully!")
	_, _ = fmt.Fprintf(writer, "ID: %s\n", id)
	_, _ = fmt.Fprintf(writer, "Key: %s\n", plainKey)
	_, _ = fmt.Fprintf(writer, "Admin: %t\n", isAdmin)
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The key is shown only once. Store it securely.")
}
