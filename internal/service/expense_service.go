package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/repository"
	"github.com/spendtrack/backend/internal/utils"
)

// dateLayout is the calendar date format used for expense dates
const dateLayout = "2006-01-02"

// ExpenseService handles recording and querying expenses
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Add records a new expense. A missing amount and a malformed amount are
// reported as different errors: the first is a missing required field,
// the second an invalid value.
func (s *ExpenseService) Add(ctx context.Context, req *models.ExpenseCreate) (*models.Expense, error) {
	var missing []string
	if !req.Amount.Set {
		missing = append(missing, "amount")
	}
	if utils.Normalize(req.Category) == "" {
		missing = append(missing, "category")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, utils.NewMissingFieldsError(missing)
	}

	if !req.Amount.Valid {
		return nil, utils.NewInvalidAmountError()
	}
	if req.Amount.Value < 0 {
		return nil, utils.NewNegativeAmountError()
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, utils.NewValidationError("date", "Date must be in YYYY-MM-DD format")
	}

	expense := &models.Expense{
		UserID:      req.UserID,
		Amount:      utils.Round2(req.Amount.Value),
		Category:    utils.Normalize(req.Category),
		Description: req.Description,
		Date:        date,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	log.Info().
		Int64("expense_id", expense.ID).
		Int64("user_id", expense.UserID).
		Str("category", expense.Category).
		Msg("Expense recorded")

	return expense, nil
}

// List retrieves a user's expenses matching the given query
func (s *ExpenseService) List(ctx context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error) {
	q.Category = utils.Normalize(q.Category)
	return s.expenseRepo.Query(ctx, userID, q)
}

// Update applies a partial update to an expense. Fields absent from the
// request keep their current values.
func (s *ExpenseService) Update(ctx context.Context, id int64, upd *models.ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	if upd.Amount != nil {
		if !upd.Amount.Valid {
			return nil, utils.NewInvalidAmountError()
		}
		if upd.Amount.Value < 0 {
			return nil, utils.NewNegativeAmountError()
		}
		expense.Amount = utils.Round2(upd.Amount.Value)
		changed = true
	}
	if upd.Category != nil {
		category := utils.Normalize(*upd.Category)
		if category == "" {
			return nil, utils.NewValidationError("category", "Category must not be empty")
		}
		expense.Category = category
		changed = true
	}
	if upd.Description != nil {
		expense.Description = *upd.Description
		changed = true
	}
	if upd.Date != nil {
		date, err := time.Parse(dateLayout, *upd.Date)
		if err != nil {
			return nil, utils.NewValidationError("date", "Date must be in YYYY-MM-DD format")
		}
		expense.Date = date
		changed = true
	}

	if !changed {
		return expense, nil
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	log.Info().Int64("expense_id", expense.ID).Msg("Expense updated")

	return expense, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("expense_id", id).Msg("Expense deleted")

	return nil
}
