package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

func TestBudgetService_Set(t *testing.T) {
	budgetRepo := newFakeBudgetRepo()
	svc := NewBudgetService(budgetRepo, newFakeExpenseRepo())

	budget, err := svc.Set(context.Background(), &models.BudgetSet{
		UserID:   1,
		Category: "  Food ",
		Limit:    setAmount(300.009),
		Month:    "2024-03",
	})

	require.NoError(t, err)
	assert.Equal(t, "food", budget.Category)
	assert.Equal(t, 300.01, budget.Limit)
	assert.Equal(t, "2024-03", budget.Month)
}

func TestBudgetService_Set_ReplacesExisting(t *testing.T) {
	budgetRepo := newFakeBudgetRepo()
	svc := NewBudgetService(budgetRepo, newFakeExpenseRepo())

	first, err := svc.Set(context.Background(), &models.BudgetSet{
		UserID: 1, Category: "food", Limit: setAmount(300), Month: "2024-03",
	})
	require.NoError(t, err)

	second, err := svc.Set(context.Background(), &models.BudgetSet{
		UserID: 1, Category: "food", Limit: setAmount(450), Month: "2024-03",
	})
	require.NoError(t, err)

	// Same (user, category, month) stays one record with the new limit
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, budgetRepo.budgets, 1)

	budgets, err := budgetRepo.GetByUserAndMonth(context.Background(), 1, "2024-03")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, 450.0, budgets[0].Limit)
}

func TestBudgetService_Set_MissingFields(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo(), newFakeExpenseRepo())

	_, err := svc.Set(context.Background(), &models.BudgetSet{UserID: 1})

	require.Error(t, err)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	// The missing limit is reported under its wire name
	assert.Contains(t, appErr.Details, "amount")
	assert.Contains(t, appErr.Details, "category")
	assert.Contains(t, appErr.Details, "month")
}

func TestBudgetService_Set_NegativeLimit(t *testing.T) {
	budgetRepo := newFakeBudgetRepo()
	svc := NewBudgetService(budgetRepo, newFakeExpenseRepo())

	_, err := svc.Set(context.Background(), &models.BudgetSet{
		UserID: 1, Category: "food", Limit: setAmount(-300), Month: "2024-03",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrValidation))

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "amount", appErr.Field)
	assert.Empty(t, budgetRepo.budgets)
}

func TestBudgetService_Set_BadMonth(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo(), newFakeExpenseRepo())

	_, err := svc.Set(context.Background(), &models.BudgetSet{
		UserID: 1, Category: "food", Limit: setAmount(300), Month: "March 2024",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrBadMonthFormat))
}

func TestBudgetService_Get_WithSpending(t *testing.T) {
	budgetRepo := newFakeBudgetRepo()
	expenseRepo := newFakeExpenseRepo()
	svc := NewBudgetService(budgetRepo, expenseRepo)
	expenseSvc := NewExpenseService(expenseRepo)

	ctx := context.Background()
	_, err := svc.Set(ctx, &models.BudgetSet{
		UserID: 1, Category: "food", Limit: setAmount(300), Month: "2024-03",
	})
	require.NoError(t, err)

	for _, e := range []models.ExpenseCreate{
		{UserID: 1, Amount: setAmount(10), Category: "food", Date: "2024-03-05"},
		{UserID: 1, Amount: setAmount(5.50), Category: "food", Date: "2024-03-31"},
		// Outside the month, must not count
		{UserID: 1, Amount: setAmount(100), Category: "food", Date: "2024-04-01"},
	} {
		req := e
		_, err := expenseSvc.Add(ctx, &req)
		require.NoError(t, err)
	}

	statuses, err := svc.Get(ctx, 1, "2024-03")

	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, 15.5, statuses[0].Spent)
	assert.Equal(t, 284.5, statuses[0].Remaining)
}

func TestBudgetService_Get_BadMonth(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo(), newFakeExpenseRepo())

	_, err := svc.Get(context.Background(), 1, "2024-3")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrBadMonthFormat))
}

func TestBudgetService_Get_Empty(t *testing.T) {
	svc := NewBudgetService(newFakeBudgetRepo(), newFakeExpenseRepo())

	statuses, err := svc.Get(context.Background(), 1, "2024-03")

	require.NoError(t, err)
	assert.Empty(t, statuses)
}
