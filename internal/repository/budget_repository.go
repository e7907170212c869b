package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/database"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// BudgetRepository defines the interface for budget data access
type BudgetRepository interface {
	Upsert(ctx context.Context, budget *models.Budget) error
	GetByUserAndMonth(ctx context.Context, userID int64, month string) ([]*models.Budget, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

// PostgresBudgetRepository is a PostgreSQL implementation of BudgetRepository
type PostgresBudgetRepository struct {
	db *database.Pool
}

// NewBudgetRepository creates a new PostgresBudgetRepository
func NewBudgetRepository(db *database.Pool) BudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

// Upsert inserts a budget or replaces the limit of an existing one.
// A budget is unique per (user, category, month), so setting it twice
// never produces a second row.
func (r *PostgresBudgetRepository) Upsert(ctx context.Context, budget *models.Budget) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, category, limit_amount, month, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category, month)
		DO UPDATE SET limit_amount = EXCLUDED.limit_amount, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`, constants.TableBudgets)

	now := time.Now()
	budget.UpdatedAt = now

	start := time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		budget.UserID,
		budget.Category,
		budget.Limit,
		budget.Month,
		now,
		now,
	).Scan(&budget.ID, &budget.CreatedAt)

	utils.LogDBQuery(query, []interface{}{budget.UserID, budget.Category, budget.Limit, budget.Month}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}

	return nil
}

// GetByUserAndMonth retrieves all of a user's budgets for a given month
func (r *PostgresBudgetRepository) GetByUserAndMonth(ctx context.Context, userID int64, month string) ([]*models.Budget, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, category, limit_amount, month, created_at, updated_at
		FROM %s
		WHERE user_id = $1 AND month = $2
		ORDER BY category
	`, constants.TableBudgets)

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, userID, month)
	utils.LogDBQuery(query, []interface{}{userID, month}, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		budget := &models.Budget{}
		if err := rows.Scan(
			&budget.ID,
			&budget.UserID,
			&budget.Category,
			&budget.Limit,
			&budget.Month,
			&budget.CreatedAt,
			&budget.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return budgets, nil
}

// DeleteByUserID removes all budgets belonging to a user
func (r *PostgresBudgetRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", constants.TableBudgets)

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query, userID)
	utils.LogDBQuery(query, []interface{}{userID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete budgets for user: %w", err)
	}

	return nil
}
