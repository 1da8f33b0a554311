// Package repository implements API key persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
	"github.com/bearodactyl/apiodactyl/internal/database"
	apperrors "github.com/bearodactyl/apiodactyl/internal/errors"
)

// PostgreSQLAPIKeyRepository implements APIKey persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLAPIKeyRepository struct {
	db *sql.DB
}

// Create inserts a new APIKey into the PostgreSQL database. The key_hash unique
// index rejects duplicate digests. Returns an error if database insertion fails.
func (p *PostgreSQLAPIKeyRepository) Create(ctx context.Context, apiKey *authDomain.APIKey) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO api_keys (id, key_hash, is_admin, created_at, last_used_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		apiKey.ID,
		apiKey.KeyHash,
		apiKey.IsAdmin,
		apiKey.CreatedAt,
		apiKey.LastUsedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create api key")
	}
	return nil
}

// GetByKeyHash retrieves an APIKey by its digest. Returns ErrAPIKeyNotFound if
// no record matches, or an error if the database query fails.
func (p *PostgreSQLAPIKeyRepository) GetByKeyHash(
	ctx context.Context,
	keyHash string,
) (*authDomain.APIKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, key_hash, is_admin, created_at, last_used_at
			  FROM api_keys WHERE key_hash = $1`

	var apiKey authDomain.APIKey

	err := querier.QueryRowContext(ctx, query, keyHash).Scan(
		&apiKey.ID,
		&apiKey.KeyHash,
		&apiKey.IsAdmin,
		&apiKey.CreatedAt,
		&apiKey.LastUsedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrAPIKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get api key")
	}

	return &apiKey, nil
}

// UpdateLastUsed sets the last-used timestamp of the APIKey with the given ID.
func (p *PostgreSQLAPIKeyRepository) UpdateLastUsed(
	ctx context.Context,
	apiKeyID uuid.UUID,
	lastUsedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE api_keys SET last_used_at = $1 WHERE id = $2`

	_, err := querier.ExecContext(ctx, query, lastUsedAt, apiKeyID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update api key last used")
	}
	return nil
}

// DeleteByKeyHash removes the APIKey with the given digest. Deleting a digest
// with no matching record is not an error.
func (p *PostgreSQLAPIKeyRepository) DeleteByKeyHash(ctx context.Context, keyHash string) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM api_keys WHERE key_hash = $1`

	_, err := querier.ExecContext(ctx, query, keyHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api key")
	}
	return nil
}

// List retrieves every APIKey, newest first.
func (p *PostgreSQLAPIKeyRepository) List(ctx context.Context) ([]*authDomain.APIKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, key_hash, is_admin, created_at, last_used_at
			  FROM api_keys ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list api keys")
	}
	defer rows.Close()

	var apiKeys []*authDomain.APIKey
	for rows.Next() {
		var apiKey authDomain.APIKey
		if err := rows.Scan(
			&apiKey.ID,
			&apiKey.KeyHash,
			&apiKey.IsAdmin,
			&apiKey.CreatedAt,
			&apiKey.LastUsedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan api key")
		}
		apiKeys = append(apiKeys, &apiKey)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate api keys")
	}

	return apiKeys, nil
}

// CountAdmins returns the number of APIKeys carrying the admin flag.
func (p *PostgreSQLAPIKeyRepository) CountAdmins(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM api_keys WHERE is_admin = TRUE`

	var count int64
	if err := querier.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count admin api keys")
	}

	return count, nil
}

// NewPostgreSQLAPIKeyRepository creates a new PostgreSQL APIKey repository.
func NewPostgreSQLAPIKeyRepository(db *sql.DB) *PostgreSQLAPIKeyRepository {
	return &PostgreSQLAPIKeyRepository{db: db}
}
