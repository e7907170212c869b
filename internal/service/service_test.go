package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// In-memory repository fakes used across the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return utils.NewDuplicateError("User", "username", user.Username)
		}
		// Absent emails never collide
		if user.Email != "" && u.Email == user.Email {
			return utils.NewDuplicateError("User", "email", user.Email)
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, utils.NewNotFoundError("User", id)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	username = strings.ToLower(username)
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("User", username)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("User", email)
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return utils.NewNotFoundError("User", user.ID)
	}
	user.UpdatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return utils.NewNotFoundError("User", id)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ChangePassword(_ context.Context, id int64, passwordHash, salt string) error {
	u, ok := r.users[id]
	if !ok {
		return utils.NewNotFoundError("User", id)
	}
	u.PasswordHash = passwordHash
	u.Salt = salt
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(context.Background(), email)
	return err == nil, nil
}

type fakeExpenseRepo struct {
	expenses map[int64]*models.Expense
	nextID   int64
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[int64]*models.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *models.Expense) error {
	r.nextID++
	expense.ID = r.nextID
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = expense.CreatedAt
	stored := *expense
	r.expenses[expense.ID] = &stored
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id int64) (*models.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, utils.NewNotFoundError("Expense", id)
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepo) Query(_ context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error) {
	var result []*models.Expense
	for _, e := range r.expenses {
		if e.UserID != userID {
			continue
		}
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		if q.StartDate != nil && e.Date.Before(*q.StartDate) {
			continue
		}
		if q.EndDate != nil && e.Date.After(*q.EndDate) {
			continue
		}
		copied := *e
		result = append(result, &copied)
	}
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *models.Expense) error {
	if _, ok := r.expenses[expense.ID]; !ok {
		return utils.NewNotFoundError("Expense", expense.ID)
	}
	expense.UpdatedAt = time.Now()
	stored := *expense
	r.expenses[expense.ID] = &stored
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.expenses[id]; !ok {
		return utils.NewNotFoundError("Expense", id)
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) DeleteByUserID(_ context.Context, userID int64) error {
	for id, e := range r.expenses {
		if e.UserID == userID {
			delete(r.expenses, id)
		}
	}
	return nil
}

func (r *fakeExpenseRepo) SumByCategory(_ context.Context, userID int64, from, to time.Time) (map[string]float64, error) {
	totals := make(map[string]float64)
	for _, e := range r.expenses {
		if e.UserID != userID || e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		totals[e.Category] += e.Amount
	}
	return totals, nil
}

func (r *fakeExpenseRepo) TotalBetween(_ context.Context, userID int64, from, to time.Time) (float64, error) {
	total := 0.0
	for _, e := range r.expenses {
		if e.UserID != userID || e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		total += e.Amount
	}
	return total, nil
}

type fakeBudgetRepo struct {
	budgets map[string]*models.Budget
	nextID  int64
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[string]*models.Budget)}
}

func budgetKey(userID int64, category, month string) string {
	return fmt.Sprintf("%d|%s|%s", userID, category, month)
}

func (r *fakeBudgetRepo) Upsert(_ context.Context, budget *models.Budget) error {
	key := budgetKey(budget.UserID, budget.Category, budget.Month)
	if existing, ok := r.budgets[key]; ok {
		budget.ID = existing.ID
		budget.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		budget.ID = r.nextID
		budget.CreatedAt = time.Now()
	}
	budget.UpdatedAt = time.Now()
	stored := *budget
	r.budgets[key] = &stored
	return nil
}

func (r *fakeBudgetRepo) GetByUserAndMonth(_ context.Context, userID int64, month string) ([]*models.Budget, error) {
	var result []*models.Budget
	for _, b := range r.budgets {
		if b.UserID == userID && b.Month == month {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBudgetRepo) DeleteByUserID(_ context.Context, userID int64) error {
	for key, b := range r.budgets {
		if b.UserID == userID {
			delete(r.budgets, key)
		}
	}
	return nil
}

type fakeResetRepo struct {
	tokens map[int64]*models.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[int64]*models.PasswordResetToken)}
}

func (r *fakeResetRepo) Upsert(_ context.Context, token *models.PasswordResetToken) error {
	token.Used = false
	token.CreatedAt = time.Now()
	stored := *token
	r.tokens[token.UserID] = &stored
	return nil
}

func (r *fakeResetRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash {
			copied := *t
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("Reset token", "")
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, userID int64) error {
	t, ok := r.tokens[userID]
	if !ok {
		return utils.NewNotFoundError("Reset token", userID)
	}
	t.Used = true
	return nil
}

func (r *fakeResetRepo) DeleteByUserID(_ context.Context, userID int64) error {
	delete(r.tokens, userID)
	return nil
}

// capturingNotifier records the reset links it is asked to send
type capturingNotifier struct {
	links []string
	users []*models.User
}

func (n *capturingNotifier) SendResetLink(_ context.Context, user *models.User, link string) error {
	n.users = append(n.users, user)
	n.links = append(n.links, link)
	return nil
}
