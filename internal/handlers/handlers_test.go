package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// Function-field fakes for the service interfaces.

type fakeUserService struct {
	registerFn       func(ctx context.Context, reg *models.UserRegistration) (*models.User, error)
	authenticateFn   func(ctx context.Context, creds *models.UserCredentials) (*models.User, error)
	getUserByIDFn    func(ctx context.Context, id int64) (*models.User, error)
	updateUserFn     func(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error)
	changePasswordFn func(ctx context.Context, id int64, change *models.PasswordChange) error
	deleteUserFn     func(ctx context.Context, id int64) error
}

func (f *fakeUserService) Register(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	return f.registerFn(ctx, reg)
}

func (f *fakeUserService) Authenticate(ctx context.Context, creds *models.UserCredentials) (*models.User, error) {
	return f.authenticateFn(ctx, creds)
}

func (f *fakeUserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return f.getUserByIDFn(ctx, id)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	return f.updateUserFn(ctx, id, update)
}

func (f *fakeUserService) ChangePassword(ctx context.Context, id int64, change *models.PasswordChange) error {
	return f.changePasswordFn(ctx, id, change)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id int64) error {
	return f.deleteUserFn(ctx, id)
}

type fakeExpenseService struct {
	addFn    func(ctx context.Context, req *models.ExpenseCreate) (*models.Expense, error)
	listFn   func(ctx context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error)
	updateFn func(ctx context.Context, id int64, upd *models.ExpenseUpdate) (*models.Expense, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeExpenseService) Add(ctx context.Context, req *models.ExpenseCreate) (*models.Expense, error) {
	return f.addFn(ctx, req)
}

func (f *fakeExpenseService) List(ctx context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error) {
	return f.listFn(ctx, userID, q)
}

func (f *fakeExpenseService) Update(ctx context.Context, id int64, upd *models.ExpenseUpdate) (*models.Expense, error) {
	return f.updateFn(ctx, id, upd)
}

func (f *fakeExpenseService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeBudgetService struct {
	setFn func(ctx context.Context, req *models.BudgetSet) (*models.Budget, error)
	getFn func(ctx context.Context, userID int64, month string) ([]*models.BudgetStatus, error)
}

func (f *fakeBudgetService) Set(ctx context.Context, req *models.BudgetSet) (*models.Budget, error) {
	return f.setFn(ctx, req)
}

func (f *fakeBudgetService) Get(ctx context.Context, userID int64, month string) ([]*models.BudgetStatus, error) {
	return f.getFn(ctx, userID, month)
}

type fakeSummaryService struct {
	summarizeFn func(ctx context.Context, userID int64, month string) (*models.Summary, error)
}

func (f *fakeSummaryService) Summarize(ctx context.Context, userID int64, month string) (*models.Summary, error) {
	return f.summarizeFn(ctx, userID, month)
}

type fakeResetService struct {
	requestResetFn func(ctx context.Context, identifier string) error
	consumeResetFn func(ctx context.Context, token, newPassword string) error
}

func (f *fakeResetService) RequestReset(ctx context.Context, identifier string) error {
	return f.requestResetFn(ctx, identifier)
}

func (f *fakeResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	return f.consumeResetFn(ctx, token, newPassword)
}

// doRequest runs a request through a chi router so URL parameters resolve
func doRequest(t *testing.T, router chi.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the standard response format for assertions
type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   *utils.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
