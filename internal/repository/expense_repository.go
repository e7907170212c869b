package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/database"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// sortColumns maps the permitted sort keys to their database columns.
// Anything outside this map falls back to sorting by date.
var sortColumns = map[string]string{
	"date":     constants.ColumnExpenseDate,
	"amount":   constants.ColumnAmount,
	"category": constants.ColumnCategory,
}

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id int64) (*models.Expense, error)
	Query(ctx context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
	SumByCategory(ctx context.Context, userID int64, from, to time.Time) (map[string]float64, error)
	TotalBetween(ctx context.Context, userID int64, from, to time.Time) (float64, error)
}

// PostgresExpenseRepository is a PostgreSQL implementation of ExpenseRepository
type PostgresExpenseRepository struct {
	db *database.Pool
}

// NewExpenseRepository creates a new PostgresExpenseRepository
func NewExpenseRepository(db *database.Pool) ExpenseRepository {
	return &PostgresExpenseRepository{db: db}
}

// Create inserts a new expense record
func (r *PostgresExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, amount, category, description, expense_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, constants.TableExpenses)

	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	start := time.Now()
	err := r.db.QueryRowContext(
		ctx,
		query,
		expense.UserID,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date,
		expense.CreatedAt,
		expense.UpdatedAt,
	).Scan(&expense.ID)

	utils.LogDBQuery(query, []interface{}{expense.UserID, expense.Amount, expense.Category}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetByID retrieves an expense by ID
func (r *PostgresExpenseRepository) GetByID(ctx context.Context, id int64) (*models.Expense, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, amount, category, description, expense_date, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, constants.TableExpenses)

	expense := &models.Expense{}

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Amount,
		&expense.Category,
		&expense.Description,
		&expense.Date,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError("Expense", id)
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return expense, nil
}

// Query retrieves a user's expenses with optional filtering, ordering, and
// a row limit. The filter conditions are combined with AND; date bounds are
// inclusive.
func (r *PostgresExpenseRepository) Query(ctx context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`
		SELECT id, user_id, amount, category, description, expense_date, created_at, updated_at
		FROM %s
		WHERE user_id = $1
	`, constants.TableExpenses))

	args := []interface{}{userID}

	if q.Category != "" {
		args = append(args, q.Category)
		sb.WriteString(fmt.Sprintf(" AND category = $%d", len(args)))
	}
	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		sb.WriteString(fmt.Sprintf(" AND expense_date >= $%d", len(args)))
	}
	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		sb.WriteString(fmt.Sprintf(" AND expense_date <= $%d", len(args)))
	}

	// Sort key and direction come from a fixed whitelist, never from the
	// raw query string.
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = constants.ColumnExpenseDate
	}
	direction := "DESC"
	if strings.EqualFold(q.Order, "asc") {
		direction = "ASC"
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY %s %s, id %s", column, direction, direction))

	limit := q.Limit
	if limit <= 0 || limit > constants.MaxQueryLimit {
		limit = constants.MaxQueryLimit
	}
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))

	query := sb.String()

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	utils.LogDBQuery(query, args, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.UserID,
			&expense.Amount,
			&expense.Category,
			&expense.Description,
			&expense.Date,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}

	return expenses, nil
}

// Update updates an existing expense record
func (r *PostgresExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET amount = $1, category = $2, description = $3, expense_date = $4, updated_at = $5
		WHERE id = $6
	`, constants.TableExpenses)

	expense.UpdatedAt = time.Now()

	start := time.Now()
	result, err := r.db.ExecContext(
		ctx,
		query,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.Date,
		expense.UpdatedAt,
		expense.ID,
	)
	utils.LogDBQuery(query, []interface{}{expense.Amount, expense.Category, expense.ID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("Expense", expense.ID)
	}

	return nil
}

// Delete removes an expense record
func (r *PostgresExpenseRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", constants.TableExpenses)

	start := time.Now()
	result, err := r.db.ExecContext(ctx, query, id)
	utils.LogDBQuery(query, []interface{}{id}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return utils.NewNotFoundError("Expense", id)
	}

	return nil
}

// DeleteByUserID removes all expenses belonging to a user
func (r *PostgresExpenseRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE user_id = $1", constants.TableExpenses)

	start := time.Now()
	_, err := r.db.ExecContext(ctx, query, userID)
	utils.LogDBQuery(query, []interface{}{userID}, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("failed to delete expenses for user: %w", err)
	}

	return nil
}

// SumByCategory returns a user's total spending per category between the
// given dates, both inclusive.
func (r *PostgresExpenseRepository) SumByCategory(ctx context.Context, userID int64, from, to time.Time) (map[string]float64, error) {
	query := fmt.Sprintf(`
		SELECT category, COALESCE(SUM(amount), 0)
		FROM %s
		WHERE user_id = $1 AND expense_date >= $2 AND expense_date <= $3
		GROUP BY category
	`, constants.TableExpenses)

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	utils.LogDBQuery(query, []interface{}{userID, from, to}, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[category] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}

	return totals, nil
}

// TotalBetween returns a user's total spending between the given dates,
// both inclusive.
func (r *PostgresExpenseRepository) TotalBetween(ctx context.Context, userID int64, from, to time.Time) (float64, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0)
		FROM %s
		WHERE user_id = $1 AND expense_date >= $2 AND expense_date <= $3
	`, constants.TableExpenses)

	var total float64

	start := time.Now()
	err := r.db.QueryRowContext(ctx, query, userID, from, to).Scan(&total)
	utils.LogDBQuery(query, []interface{}{userID, from, to}, time.Since(start), err)

	if err != nil {
		return 0, fmt.Errorf("failed to total expenses: %w", err)
	}

	return total, nil
}
