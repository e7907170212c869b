// Package server wires the application together and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/auth"
	"github.com/spendtrack/backend/internal/config"
	"github.com/spendtrack/backend/internal/database"
	"github.com/spendtrack/backend/internal/handlers"
	"github.com/spendtrack/backend/internal/repository"
	"github.com/spendtrack/backend/internal/service"
	"github.com/spendtrack/backend/migrations"
)

// Server represents the API server and its dependencies
type Server struct {
	config *config.AppConfig
	db     *database.Pool
	router http.Handler

	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	expenseHandler *handlers.ExpenseHandler
	budgetHandler  *handlers.BudgetHandler
	summaryHandler *handlers.SummaryHandler
	resetHandler   *handlers.PasswordResetHandler

	httpServer *http.Server
}

// NewServer creates a fully wired server from the configuration
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{config: cfg}

	if err := s.setupDatabase(); err != nil {
		return nil, err
	}

	if err := migrations.NewMigrator(s.db).Run(context.Background()); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s.setupHandlers()
	s.router = s.SetupRoutes()

	return s, nil
}

// setupDatabase connects to the database
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.config)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	s.db = db
	return nil
}

// setupHandlers builds the repository, service, and handler layers
func (s *Server) setupHandlers() {
	userRepo := repository.NewUserRepository(s.db)
	expenseRepo := repository.NewExpenseRepository(s.db)
	budgetRepo := repository.NewBudgetRepository(s.db)
	resetRepo := repository.NewPasswordResetRepository(s.db)

	passwordCfg := auth.ConfigFromAppConfig(s.config)

	userService := service.NewUserService(userRepo, expenseRepo, budgetRepo, resetRepo, passwordCfg)
	expenseService := service.NewExpenseService(expenseRepo)
	budgetService := service.NewBudgetService(budgetRepo, expenseRepo)
	summaryService := service.NewSummaryService(expenseRepo)
	resetService := service.NewPasswordResetService(
		userRepo,
		resetRepo,
		service.NewLogResetNotifier(),
		passwordCfg,
		s.config.Frontend.BaseURL,
	)

	s.authHandler = handlers.NewAuthHandler(userService)
	s.userHandler = handlers.NewUserHandler(userService)
	s.expenseHandler = handlers.NewExpenseHandler(expenseService)
	s.budgetHandler = handlers.NewBudgetHandler(budgetService)
	s.summaryHandler = handlers.NewSummaryHandler(summaryService)
	s.resetHandler = handlers.NewPasswordResetHandler(resetService)
}

// Start runs the HTTP server until an interrupt or termination signal
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.config.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", s.httpServer.Addr).Msg("Starting HTTP server")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server")
		return s.Shutdown()
	}
}

// Shutdown gracefully stops the HTTP server and closes the database pool
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
	}

	s.db.Close()

	log.Info().Msg("Server stopped")
	return nil
}

// Router returns the server's HTTP handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}
