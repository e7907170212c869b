package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

func expenseRows(expenses ...*models.Expense) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "amount", "category", "description", "expense_date", "created_at", "updated_at"})
	for _, e := range expenses {
		rows.AddRow(e.ID, e.UserID, e.Amount, e.Category, e.Description, e.Date, e.CreatedAt, e.UpdatedAt)
	}
	return rows
}

func TestExpenseRepository_Create(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	expense := &models.Expense{
		UserID:      1,
		Amount:      42.50,
		Category:    "food",
		Description: "groceries",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO expenses")).
		WithArgs(expense.UserID, expense.Amount, expense.Category, expense.Description, expense.Date, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

	err := repo.Create(context.Background(), expense)

	require.NoError(t, err)
	assert.Equal(t, int64(10), expense.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Query_NoFilters(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	now := time.Now()
	e := &models.Expense{ID: 1, UserID: 1, Amount: 10, Category: "food", Date: now, CreatedAt: now, UpdatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY expense_date DESC, id DESC LIMIT $2")).
		WithArgs(int64(1), 500).
		WillReturnRows(expenseRows(e))

	expenses, err := repo.Query(context.Background(), 1, models.ExpenseQuery{})

	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(1), expenses[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Query_AllFilters(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("AND category = $2 AND expense_date >= $3 AND expense_date <= $4 ORDER BY amount ASC, id ASC LIMIT $5")).
		WithArgs(int64(1), "food", start, end, 25).
		WillReturnRows(expenseRows())

	q := models.ExpenseQuery{
		Category:  "food",
		StartDate: &start,
		EndDate:   &end,
		SortBy:    "amount",
		Order:     "asc",
		Limit:     25,
	}

	expenses, err := repo.Query(context.Background(), 1, q)

	require.NoError(t, err)
	assert.Empty(t, expenses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Query_UnknownSortFallsBackToDate(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY expense_date DESC, id DESC")).
		WithArgs(int64(1), 500).
		WillReturnRows(expenseRows())

	_, err := repo.Query(context.Background(), 1, models.ExpenseQuery{SortBy: "id; DROP TABLE expenses"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Query_LimitClamped(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2")).
		WithArgs(int64(1), 500).
		WillReturnRows(expenseRows())

	_, err := repo.Query(context.Background(), 1, models.ExpenseQuery{Limit: 10000})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Update_NotFound(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	expense := &models.Expense{ID: 99, Amount: 5, Category: "misc", Date: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE expenses")).
		WithArgs(expense.Amount, expense.Category, expense.Description, expense.Date, sqlmock.AnyArg(), expense.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), expense)

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Delete(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM expenses WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 10)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_SumByCategory(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"category", "sum"}).
		AddRow("food", 10.0).
		AddRow("transport", 5.0)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY category")).
		WithArgs(int64(1), from, to).
		WillReturnRows(rows)

	totals, err := repo.SumByCategory(context.Background(), 1, from, to)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"food": 10.0, "transport": 5.0}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_TotalBetween(t *testing.T) {
	pool, mock := newMockPool(t)
	repo := NewExpenseRepository(pool)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0)")).
		WithArgs(int64(1), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(115.0))

	total, err := repo.TotalBetween(context.Background(), 1, from, to)

	require.NoError(t, err)
	assert.Equal(t, 115.0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
