package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/auth"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/repository"
	"github.com/spendtrack/backend/internal/utils"
)

// UserService handles registration, authentication, and account management
type UserService struct {
	userRepo    repository.UserRepository
	expenseRepo repository.ExpenseRepository
	budgetRepo  repository.BudgetRepository
	resetRepo   repository.PasswordResetRepository
	passwordCfg *auth.PasswordConfig
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	expenseRepo repository.ExpenseRepository,
	budgetRepo repository.BudgetRepository,
	resetRepo repository.PasswordResetRepository,
	passwordCfg *auth.PasswordConfig,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		resetRepo:   resetRepo,
		passwordCfg: passwordCfg,
	}
}

// Register creates a new user account. The username and email are
// normalized before storage so that lookups are case-insensitive.
func (s *UserService) Register(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	username := utils.Normalize(reg.Username)
	email := utils.Normalize(reg.Email)

	if err := utils.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := utils.ValidatePassword(reg.Password); err != nil {
		return nil, err
	}

	passwordHash, salt, err := auth.HashPassword(reg.Password, s.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("User registered")

	return user, nil
}

// Authenticate verifies a user's credentials. Unknown usernames and wrong
// passwords both produce the same invalid-credentials error.
func (s *UserService) Authenticate(ctx context.Context, creds *models.UserCredentials) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, utils.Normalize(creds.Username))
	if err != nil {
		if utils.IsNotFoundError(err) {
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, err
	}

	valid, err := auth.VerifyPassword(creds.Password, user.PasswordHash, user.Salt, s.passwordCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, utils.NewInvalidCredentialsError()
	}

	log.Info().Int64("user_id", user.ID).Msg("User authenticated")

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser updates a user's profile fields. Empty fields keep their
// current values.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != "" {
		username := utils.Normalize(update.Username)
		if err := utils.ValidateUsername(username); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if update.Email != "" {
		user.Email = utils.Normalize(update.Email)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.ID).Msg("User updated")

	return user, nil
}

// ChangePassword changes a user's password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, id int64, change *models.PasswordChange) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	valid, err := auth.VerifyPassword(change.CurrentPassword, user.PasswordHash, user.Salt, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return utils.NewInvalidCredentialsError()
	}

	if err := utils.ValidatePassword(change.NewPassword); err != nil {
		return err
	}

	passwordHash, salt, err := auth.HashPassword(change.NewPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, id, passwordHash, salt); err != nil {
		return err
	}

	log.Info().Int64("user_id", id).Msg("User changed password")

	return nil
}

// DeleteUser removes a user account together with all of its expenses,
// budgets, and reset tokens. The foreign keys cascade as well; the
// explicit deletes keep the behavior independent of the schema.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteByUserID(ctx, id); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteByUserID(ctx, id); err != nil {
		return err
	}
	if err := s.resetRepo.DeleteByUserID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("user_id", id).Msg("User deleted")

	return nil
}
