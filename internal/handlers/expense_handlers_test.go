package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

func expenseRouter(svc ExpenseService) chi.Router {
	h := NewExpenseHandler(svc)
	r := chi.NewRouter()
	r.Post("/expenses", h.CreateExpense)
	r.Get("/expenses/{userID}", h.ListExpenses)
	r.Put("/expenses/{expenseID}", h.UpdateExpense)
	r.Delete("/expenses/{expenseID}", h.DeleteExpense)
	return r
}

func TestExpenseHandler_Create(t *testing.T) {
	svc := &fakeExpenseService{
		addFn: func(_ context.Context, req *models.ExpenseCreate) (*models.Expense, error) {
			return &models.Expense{ID: 10, UserID: req.UserID, Amount: req.Amount.Value, Category: req.Category}, nil
		},
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodPost, "/expenses", map[string]interface{}{
		"user_id":  "1",
		"amount":   42.5,
		"category": "food",
		"date":     "2024-03-10",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"id":"10"`)
}

func TestExpenseHandler_Create_StringAmount(t *testing.T) {
	var got models.Amount
	svc := &fakeExpenseService{
		addFn: func(_ context.Context, req *models.ExpenseCreate) (*models.Expense, error) {
			got = req.Amount
			return &models.Expense{ID: 1}, nil
		},
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodPost, "/expenses", map[string]interface{}{
		"user_id":  "1",
		"amount":   "19.99",
		"category": "food",
		"date":     "2024-03-10",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, got.Set)
	assert.True(t, got.Valid)
	assert.Equal(t, 19.99, got.Value)
}

func TestExpenseHandler_Create_NonNumericAmount(t *testing.T) {
	var got models.Amount
	svc := &fakeExpenseService{
		addFn: func(_ context.Context, req *models.ExpenseCreate) (*models.Expense, error) {
			got = req.Amount
			return nil, utils.NewInvalidAmountError()
		},
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodPost, "/expenses", map[string]interface{}{
		"user_id":  "1",
		"amount":   "abc",
		"category": "food",
		"date":     "2024-03-10",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, got.Set)
	assert.False(t, got.Valid)
}

func TestExpenseHandler_List_QueryParams(t *testing.T) {
	var gotUserID int64
	var gotQuery models.ExpenseQuery
	svc := &fakeExpenseService{
		listFn: func(_ context.Context, userID int64, q models.ExpenseQuery) ([]*models.Expense, error) {
			gotUserID = userID
			gotQuery = q
			return nil, nil
		},
	}

	target := "/expenses/7?category=food&start_date=2024-03-01&end_date=2024-03-31&sort_by=amount&order=asc&limit=25"
	rec := doRequest(t, expenseRouter(svc), http.MethodGet, target, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotUserID)
	assert.Equal(t, "food", gotQuery.Category)
	assert.Equal(t, "amount", gotQuery.SortBy)
	assert.Equal(t, "asc", gotQuery.Order)
	assert.Equal(t, 25, gotQuery.Limit)
	require.NotNil(t, gotQuery.StartDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *gotQuery.StartDate)
	require.NotNil(t, gotQuery.EndDate)

	// No matches returns an empty array, not null
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "[]", string(env.Data))
}

func TestExpenseHandler_List_BadDate(t *testing.T) {
	svc := &fakeExpenseService{}

	rec := doRequest(t, expenseRouter(svc), http.MethodGet, "/expenses/7?start_date=03-01-2024", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseHandler_List_BadUserID(t *testing.T) {
	svc := &fakeExpenseService{}

	rec := doRequest(t, expenseRouter(svc), http.MethodGet, "/expenses/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpenseHandler_Update(t *testing.T) {
	var gotID int64
	var gotUpdate *models.ExpenseUpdate
	svc := &fakeExpenseService{
		updateFn: func(_ context.Context, id int64, upd *models.ExpenseUpdate) (*models.Expense, error) {
			gotID = id
			gotUpdate = upd
			return &models.Expense{ID: id, Amount: upd.Amount.Value}, nil
		},
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodPut, "/expenses/10", map[string]interface{}{
		"amount": 12.5,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), gotID)
	require.NotNil(t, gotUpdate.Amount)
	assert.Equal(t, 12.5, gotUpdate.Amount.Value)
	// Absent fields stay nil so the service can tell them apart from zeros
	assert.Nil(t, gotUpdate.Category)
	assert.Nil(t, gotUpdate.Description)
	assert.Nil(t, gotUpdate.Date)
}

func TestExpenseHandler_Update_NotFound(t *testing.T) {
	svc := &fakeExpenseService{
		updateFn: func(_ context.Context, id int64, _ *models.ExpenseUpdate) (*models.Expense, error) {
			return nil, utils.NewNotFoundError("Expense", id)
		},
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodPut, "/expenses/404", map[string]interface{}{
		"amount": 12.5,
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpenseHandler_Delete(t *testing.T) {
	svc := &fakeExpenseService{
		deleteFn: func(_ context.Context, id int64) error { return nil },
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodDelete, "/expenses/10", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	svc := &fakeExpenseService{
		deleteFn: func(_ context.Context, id int64) error {
			return utils.NewNotFoundError("Expense", id)
		},
	}

	rec := doRequest(t, expenseRouter(svc), http.MethodDelete, "/expenses/404", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
