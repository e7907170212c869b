// Package handlers implements the HTTP handlers for the API endpoints.
// Handlers depend on service interfaces so that tests can substitute fakes.
package handlers

import (
	"context"

	"github.com/spendtrack/backend/internal/models"
)

// UserService defines the user operations required by the handlers
type UserService interface {
	Register(ctx context.Context, reg *models.UserRegistration) (*models.User, error)
	Authenticate(ctx context.Context, creds *models.UserCredentials) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, id int64, change *models.PasswordChange) error
	DeleteUser(ctx context.Context, id int64) error
}

// ExpenseService defines the expense operations required by the handlers
type ExpenseService interface {
	Add(ctx context.Context, req *models.ExpenseCreate) (*models.Expense, error)
	List(ctx context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error)
	Update(ctx context.Context, id int64, upd *models.ExpenseUpdate) (*models.Expense, error)
	Delete(ctx context.Context, id int64) error
}

// BudgetService defines the budget operations required by the handlers
type BudgetService interface {
	Set(ctx context.Context, req *models.BudgetSet) (*models.Budget, error)
	Get(ctx context.Context, userID int64, month string) ([]*models.BudgetStatus, error)
}

// SummaryService defines the summary operations required by the handlers
type SummaryService interface {
	Summarize(ctx context.Context, userID int64, month string) (*models.Summary, error)
}

// PasswordResetService defines the reset operations required by the handlers
type PasswordResetService interface {
	RequestReset(ctx context.Context, identifier string) error
	ConsumeReset(ctx context.Context, token, newPassword string) error
}
