package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spendtrack/backend/internal/constants"
	"github.com/spendtrack/backend/internal/middleware"
	"github.com/spendtrack/backend/internal/utils"
)

// SetupRoutes builds the router with all middleware and endpoints
func (s *Server) SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(s.config.CORS))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// Account lifecycle
	r.Post("/register", s.authHandler.Register)
	r.Post("/login", s.authHandler.Login)
	r.Post("/forgot-password", s.resetHandler.ForgotPassword)
	r.Post("/reset-password", s.resetHandler.ResetPassword)

	// Profile
	r.Route("/users", func(r chi.Router) {
		r.Put("/change-password", s.userHandler.ChangePassword)
		r.Get("/{userID}", s.userHandler.GetUser)
		r.Put("/{userID}", s.userHandler.UpdateUser)
		r.Delete("/{userID}", s.userHandler.DeleteUser)
	})

	// Expenses
	r.Route("/expenses", func(r chi.Router) {
		r.Post("/", s.expenseHandler.CreateExpense)
		r.Get("/{userID}", s.expenseHandler.ListExpenses)
		r.Put("/{expenseID}", s.expenseHandler.UpdateExpense)
		r.Delete("/{expenseID}", s.expenseHandler.DeleteExpense)
	})

	// Budgets
	r.Route("/budgets", func(r chi.Router) {
		r.Post("/", s.budgetHandler.SetBudget)
		r.Get("/{userID}/{month}", s.budgetHandler.GetBudgets)
	})

	// Summaries
	r.Get("/summary/{userID}", s.summaryHandler.GetSummary)

	// Operational endpoints
	r.Get("/health", s.healthHandler)
	r.Get("/version", s.versionHandler)

	return r
}

// healthHandler reports service and database health
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "ok",
	}
	code := constants.StatusOK

	if err := s.db.HealthCheck(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = constants.StatusInternalServerError
	}

	utils.JSON(w, code, status)
}

// versionHandler reports the application name and version
func (s *Server) versionHandler(w http.ResponseWriter, _ *http.Request) {
	utils.JSON(w, constants.StatusOK, map[string]string{
		"name":        s.config.App.Name,
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}
