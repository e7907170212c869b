// Package repository provides data access interfaces and PostgreSQL
// implementations for the application's domain objects.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/database"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, passwordHash, salt string) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new PostgresUserRepository
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{db: db}
}

// nullString maps an empty string to SQL NULL. The email column is
// nullable with a partial unique index, so two accounts without an
// email never collide.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts a new user record. Usernames and emails are stored
// normalized, so uniqueness violations surface as duplicate errors here.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (username, email, password_hash, salt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, constants.TableUsers)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	start := time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Username,
		nullString(user.Email),
		user.PasswordHash,
		user.Salt,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	utils.LogDBQuery(query, []interface{}{user.Username, user.Email, "[REDACTED]"}, time.Since(start), err)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_username_key" {
				return utils.NewDuplicateError("User", constants.ColumnUsername, user.Username)
			}
			if pqErr.Constraint == "users_email_key" {
				return utils.NewDuplicateError("User", constants.ColumnEmail, user.Email)
			}
			return utils.NewDuplicateError("User", "", "")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, salt, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, constants.TableUsers)

	user := &models.User{}
	var email sql.NullString

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&email,
		&user.PasswordHash,
		&user.Salt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	user.Email = email.String
	return user, nil
}

// GetByUsername retrieves a user by username. The lookup is
// case-insensitive since usernames are stored normalized.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, salt, created_at, updated_at
		FROM %s
		WHERE username = LOWER($1)
	`, constants.TableUsers)

	user := &models.User{}
	var email sql.NullString

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&email,
		&user.PasswordHash,
		&user.Salt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{username}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", username)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	user.Email = email.String
	return user, nil
}

// GetByEmail retrieves a user by email address
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, salt, created_at, updated_at
		FROM %s
		WHERE email = LOWER($1)
	`, constants.TableUsers)

	user := &models.User{}
	var storedEmail sql.NullString

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&storedEmail,
		&user.PasswordHash,
		&user.Salt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{email}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("User", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	user.Email = storedEmail.String
	return user, nil
}

// Update updates a user's username and email
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET username = $1, email = $2, updated_at = $3
		WHERE id = $4
	`, constants.TableUsers)

	user.UpdatedAt = time.Now()

	start := time.Now()
	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Username,
		nullString(user.Email),
		user.UpdatedAt,
		user.ID,
	)
	utils.LogDBQuery(query, []interface{}{user.Username, user.Email, user.ID}, time.Since(start), err)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_username_key" {
				return utils.NewDuplicateError("User", constants.ColumnUsername, user.Username)
			}
			if pqErr.Constraint == "users_email_key" {
				return utils.NewDuplicateError("User", constants.ColumnEmail, user.Email)
			}
			return utils.NewDuplicateError("User", "", "")
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", user.ID)
	}

	return nil
}

// Delete removes a user. The foreign keys on expenses, budgets, and
// reset tokens cascade, so all of the user's data goes with it.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", constants.TableUsers)

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, id)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// ChangePassword updates a user's password hash and salt
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash, salt string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET password_hash = $1, salt = $2, updated_at = $3
		WHERE id = $4
	`, constants.TableUsers)

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, passwordHash, salt, time.Now(), id)
	utils.LogDBQuery(query, []interface{}{"[REDACTED]", "[REDACTED]", id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("User", id)
	}

	return nil
}

// ExistsByUsername checks if a user with the given username exists
func (r *PostgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE username = LOWER($1))", constants.TableUsers)

	var exists bool

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	utils.LogDBQuery(query, []interface{}{username}, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE email = LOWER($1))", constants.TableUsers)

	var exists bool

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	utils.LogDBQuery(query, []interface{}{email}, time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}
