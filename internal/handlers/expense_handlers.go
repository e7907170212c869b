package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// expenseDateLayout is the calendar date format accepted in query parameters
const expenseDateLayout = "2006-01-02"

// ExpenseHandler handles expense requests
type ExpenseHandler struct {
	expenseService ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense handles POST /expenses
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.ExpenseCreate
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		handleError(w, err)
		return
	}

	expense, err := h.expenseService.Add(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusCreated, expense)
}

// ListExpenses handles GET /expenses/{userID}
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, constants.ParamUserID)
	if err != nil {
		handleError(w, err)
		return
	}

	q, err := parseExpenseQuery(r)
	if err != nil {
		handleError(w, err)
		return
	}

	expenses, err := h.expenseService.List(r.Context(), userID, q)
	if err != nil {
		handleError(w, err)
		return
	}

	if expenses == nil {
		expenses = []*models.Expense{}
	}

	utils.JSON(w, constants.StatusOK, expenses)
}

// UpdateExpense handles PUT /expenses/{expenseID}
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, constants.ParamExpenseID)
	if err != nil {
		handleError(w, err)
		return
	}

	var upd models.ExpenseUpdate
	if err := utils.DecodeJSON(r, &upd); err != nil {
		handleError(w, err)
		return
	}

	expense, err := h.expenseService.Update(r.Context(), id, &upd)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusOK, expense)
}

// DeleteExpense handles DELETE /expenses/{expenseID}
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, constants.ParamExpenseID)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.expenseService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	utils.NoContent(w)
}

// parseExpenseQuery builds an expense query from the request's query string
func parseExpenseQuery(r *http.Request) (models.ExpenseQuery, error) {
	values := r.URL.Query()

	q := models.ExpenseQuery{
		Category: values.Get(constants.QueryParamCategory),
		SortBy:   values.Get(constants.QueryParamSortBy),
		Order:    values.Get(constants.QueryParamOrder),
	}

	if raw := values.Get(constants.QueryParamStartDate); raw != "" {
		date, err := time.Parse(expenseDateLayout, raw)
		if err != nil {
			return q, utils.NewValidationError(constants.QueryParamStartDate, "Date must be in YYYY-MM-DD format")
		}
		q.StartDate = &date
	}

	if raw := values.Get(constants.QueryParamEndDate); raw != "" {
		date, err := time.Parse(expenseDateLayout, raw)
		if err != nil {
			return q, utils.NewValidationError(constants.QueryParamEndDate, "Date must be in YYYY-MM-DD format")
		}
		q.EndDate = &date
	}

	if raw := values.Get(constants.QueryParamLimit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return q, utils.NewValidationError(constants.QueryParamLimit, "Limit must be a positive integer")
		}
		q.Limit = limit
	}

	return q, nil
}
