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

// MySQLAPIKeyRepository implements APIKey persistence for MySQL.
// Uses BINARY(16) for UUIDs with transaction support via database.GetTx().
type MySQLAPIKeyRepository struct {
	db *sql.DB
}

// Create inserts a new APIKey into the MySQL database using BINARY(16) for the
// UUID. Returns an error if UUID marshaling or database insertion fails.
func (m *MySQLAPIKeyRepository) Create(ctx context.Context, apiKey *authDomain.APIKey) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO api_keys (id, key_hash, is_admin, created_at, last_used_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := apiKey.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal api key id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLAPIKeyRepository) GetByKeyHash(
	ctx context.Context,
	keyHash string,
) (*authDomain.APIKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, key_hash, is_admin, created_at, last_used_at
			  FROM api_keys WHERE key_hash = ?`

	var (
		apiKey authDomain.APIKey
		rawID  []byte
	)

	err := querier.QueryRowContext(ctx, query, keyHash).Scan(
		&rawID,
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

	if err := apiKey.ID.UnmarshalBinary(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal api key id")
	}

	return &apiKey, nil
}

// UpdateLastUsed sets the last-used timestamp of the APIKey with the given ID.
func (m *MySQLAPIKeyRepository) UpdateLastUsed(
	ctx context.Context,
	apiKeyID uuid.UUID,
	lastUsedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE api_keys SET last_used_at = ? WHERE id = ?`

	id, err := apiKeyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal api key id")
	}

	_, err = querier.ExecContext(ctx, query, lastUsedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update api key last used")
	}
	return nil
}

// DeleteByKeyHash removes the APIKey with the given digest. Deleting a digest
// with no matching record is not an error.
func (m *MySQLAPIKeyRepository) DeleteByKeyHash(ctx context.Context, keyHash string) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM api_keys WHERE key_hash = ?`

	_, err := querier.ExecContext(ctx, query, keyHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete api key")
	}
	return nil
}

// List retrieves every APIKey, newest first.
func (m *MySQLAPIKeyRepository) List(ctx context.Context) ([]*authDomain.APIKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, key_hash, is_admin, created_at, last_used_at
			  FROM api_keys ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list api keys")
	}
	defer rows.Close()

	var apiKeys []*authDomain.APIKey
	for rows.Next() {
		var (
			apiKey authDomain.APIKey
			rawID  []byte
		)
		if err := rows.Scan(
			&rawID,
			&apiKey.KeyHash,
			&apiKey.IsAdmin,
			&apiKey.CreatedAt,
			&apiKey.LastUsedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan api key")
		}
		if err := apiKey.ID.UnmarshalBinary(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal api key id")
		}
		apiKeys = append(apiKeys, &apiKey)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate api keys")
	}

	return apiKeys, nil
}

// CountAdmins returns the number of APIKeys carrying the admin flag.
func (m *MySQLAPIKeyRepository) CountAdmins(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM api_keys WHERE is_admin = TRUE`

	var count int64
	if err := querier.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count admin api keys")
	}

	return count, nil
}

// NewMySQLAPIKeyRepository creates a new MySQL APIKey repository.
func NewMySQLAPIKeyRepository(db *sql.DB) *MySQLAPIKeyRepository {
	return &MySQLAPIKeyRepository{db: db}
}
