package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/spksaw/backend/internal/database"
)

// revokedTokenRepository implements token.RevocationStore on the revoked_tokens table
type revokedTokenRepository struct {
	db database.DBTX
}

// NewRevokedTokenRepository creates a new revoked token repository
func NewRevokedTokenRepository(db database.DBTX) *revokedTokenRepository {
	return &revokedTokenRepository{
		db: db,
	}
}

// Revoke records a token id; revoking the same id twice is not an error
func (r *revokedTokenRepository) Revoke(ctx context.Context, jti string, userID int, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens (jti, user_id, expires_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE expires_at = VALUES(expires_at)
	`

	if _, err := r.db.ExecContext(ctx, query, jti, userID, expiresAt.UTC()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked reports whether the token id has been revoked
func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, jti).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return exists, nil
}

// Purge deletes records whose token expired at or before now
func (r *revokedTokenRepository) Purge(ctx context.Context, now time.Time) (int, error) {
	query := `DELETE FROM revoked_tokens WHERE expires_at <= ?`

	result, err := r.db.ExecContext(ctx, query, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}
