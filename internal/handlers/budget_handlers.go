package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/utils"
)

// BudgetHandler handles budget requests
type BudgetHandler struct {
	budgetService BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// SetBudget handles POST /budgets
func (h *BudgetHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req models.BudgetSet
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		handleError(w, err)
		return
	}

	budget, err := h.budgetService.Set(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	utils.JSON(w, constants.StatusCreated, budget)
}

// GetBudgets handles GET /budgets/{userID}/{month}
func (h *BudgetHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, constants.ParamUserID)
	if err != nil {
		handleError(w, err)
		return
	}

	month := chi.URLParam(r, constants.ParamMonth)

	statuses, err := h.budgetService.Get(r.Context(), userID, month)
	if err != nil {
		handleError(w, err)
		return
	}

	if statuses == nil {
		statuses = []*models.BudgetStatus{}
	}

	utils.JSON(w, constants.StatusOK, statuses)
}
