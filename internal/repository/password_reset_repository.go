package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/database"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// PasswordResetRepository defines the interface for reset token data access
type PasswordResetRepository interface {
	Upsert(ctx context.Context, token *models.PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, userID int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
}

// PostgresPasswordResetRepository is a PostgreSQL implementation of PasswordResetRepository
type PostgresPasswordResetRepository struct {
	db *database.Pool
}

// NewPasswordResetRepository creates a new PostgresPasswordResetRepository
func NewPasswordResetRepository(db *database.Pool) PasswordResetRepository {
	return &PostgresPasswordResetRepository{db: db}
}

// Upsert stores a reset token for a user, replacing any existing one.
// The table is keyed by user_id, so a new request invalidates the
// previous token regardless of its state.
func (r *PostgresPasswordResetRepository) Upsert(ctx context.Context, token *models.PasswordResetToken) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, token_hash, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id)
		DO UPDATE SET token_hash = EXCLUDED.token_hash,
		              expires_at = EXCLUDED.expires_at,
		              used = EXCLUDED.used,
		              created_at = EXCLUDED.created_at
	`, constants.TablePasswordResetTokens)

	token.CreatedAt = time.Now()
	token.Used = false

	start := time.Now()
	_, err := r.db.ExecContext(
		ctx,
		query,
		token.UserID,
		token.TokenHash,
		token.ExpiresAt,
		token.Used,
		token.CreatedAt,
	)
	utils.LogDBQuery(query, []interface{}{token.UserID, "[REDACTED]", token.ExpiresAt}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to upsert reset token: %w", err)
	}

	return nil
}

// GetByTokenHash retrieves a reset token by its hash
func (r *PostgresPasswordResetRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	query := fmt.Sprintf(`
		SELECT user_id, token_hash, expires_at, used, created_at
		FROM %s
		WHERE token_hash = $1
	`, constants.TablePasswordResetTokens)

	token := &models.PasswordResetToken{}

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.UserID,
		&token.TokenHash,
		&token.ExpiresAt,
		&token.Used,
		&token.CreatedAt,
	)
	utils.LogDBQuery(query, []interface{}{"[REDACTED]"}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Reset token", "")
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return token, nil
}

// MarkUsed marks a user's reset token as used
func (r *PostgresPasswordResetRepository) MarkUsed(ctx context.Context, userID int64) error {
	query := fmt.Sprintf("UPDATE %s SET used = TRUE WHERE user_id = $1", constants.TablePasswordResetTokens)

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, userID)
	utils.LogDBQuery(query, []interface{}{userID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to mark reset token as used: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("Reset token", userID)
	}

	return nil
}

// DeleteByUserID removes a user's reset token
func (r *PostgresPasswordResetRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", constants.TablePasswordResetTokens)

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query, userID)
	utils.LogDBQuery(query, []interface{}{userID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete reset token for user: %w", err)
	}

	return nil
}
