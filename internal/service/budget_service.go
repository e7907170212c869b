package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/repository"
	"github.com/spendtrack/backend/internal/utils"
)

// monthLayout is the YYYY-MM format used for budget and summary months
const monthLayout = "2006-01"

// BudgetService handles per-category monthly budgets
type BudgetService struct {
	budgetRepo  repository.BudgetRepository
	expenseRepo repository.ExpenseRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo repository.BudgetRepository, expenseRepo repository.ExpenseRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, expenseRepo: expenseRepo}
}

// Set creates or replaces the budget for a user, category, and month
func (s *BudgetService) Set(ctx context.Context, req *models.BudgetSet) (*models.Budget, error) {
	var missing []string
	if !req.Limit.Set {
		missing = append(missing, "amount")
	}
	if utils.Normalize(req.Category) == "" {
		missing = append(missing, "category")
	}
	if req.Month == "" {
		missing = append(missing, "month")
	}
	if len(missing) > 0 {
		return nil, utils.NewMissingFieldsError(missing)
	}

	if !req.Limit.Valid {
		return nil, utils.NewInvalidAmountError()
	}
	if req.Limit.Value < 0 {
		return nil, utils.NewNegativeAmountError()
	}

	if _, err := utils.ParseMonth(req.Month); err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID:   req.UserID,
		Category: utils.Normalize(req.Category),
		Limit:    utils.Round2(req.Limit.Value),
		Month:    req.Month,
	}

	if err := s.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, err
	}

	log.Info().
		Int64("user_id", budget.UserID).
		Str("category", budget.Category).
		Str("month", budget.Month).
		Msg("Budget set")

	return budget, nil
}

// Get retrieves a user's budgets for a month, with the spending recorded
// against each one in that month.
func (s *BudgetService) Get(ctx context.Context, userID int64, month string) ([]*models.BudgetStatus, error) {
	monthStart, err := utils.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	budgets, err := s.budgetRepo.GetByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	spent, err := s.expenseRepo.SumByCategory(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	statuses := make([]*models.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spentAmount := utils.Round2(spent[b.Category])
		statuses = append(statuses, &models.BudgetStatus{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     spentAmount,
			Remaining: utils.Round2(b.Limit - spentAmount),
			Month:     b.Month,
		})
	}

	return statuses, nil
}
