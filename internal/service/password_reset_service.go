package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/auth"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/repository"
	"github.com/spendtrack/backend/internal/utils"
)

// resetTokenTTL is how long a password reset token remains valid
const resetTokenTTL = time.Hour

// PasswordResetService handles the password reset token lifecycle
type PasswordResetService struct {
	userRepo    repository.UserRepository
	resetRepo   repository.PasswordResetRepository
	notifier    ResetNotifier
	passwordCfg *auth.PasswordConfig
	baseURL     string
}

// NewPasswordResetService creates a new PasswordResetService
func NewPasswordResetService(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	notifier ResetNotifier,
	passwordCfg *auth.PasswordConfig,
	baseURL string,
) *PasswordResetService {
	return &PasswordResetService{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		notifier:    notifier,
		passwordCfg: passwordCfg,
		baseURL:     baseURL,
	}
}

// RequestReset starts a password reset for the account matching the given
// identifier, which may be a username or an email address. An unknown
// identifier is not an error: the caller receives the same outcome either
// way, so account existence is never revealed.
func (s *PasswordResetService) RequestReset(ctx context.Context, identifier string) error {
	identifier = utils.Normalize(identifier)

	// The token is generated before the account lookup, so an unknown
	// identifier performs the same token work as a known one.
	token, tokenHash, err := auth.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	user, err := s.userRepo.GetByUsername(ctx, identifier)
	if err != nil {
		if !utils.IsNotFoundError(err) {
			return err
		}
		user, err = s.userRepo.GetByEmail(ctx, identifier)
		if err != nil {
			if utils.IsNotFoundError(err) {
				log.Info().Msg("Password reset requested for unknown account")
				return nil
			}
			return err
		}
	}

	// One token per user: this replaces any previous token, used or not.
	resetToken := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetRepo.Upsert(ctx, resetToken); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(s.baseURL, "/"), token)
	if err := s.notifier.SendResetLink(ctx, user, link); err != nil {
		return fmt.Errorf("failed to send reset link: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Msg("Password reset requested")

	return nil
}

// ConsumeReset completes a password reset using a token from a reset link.
// A token presented after its expiry is marked used, so it stays dead even
// if the clock is later wrong. Every failure condition maps to a sentinel
// the handler collapses into one generic message.
func (s *PasswordResetService) ConsumeReset(ctx context.Context, token, newPassword string) error {
	resetToken, err := s.resetRepo.GetByTokenHash(ctx, auth.HashResetToken(token))
	if err != nil {
		return err
	}

	if resetToken.IsExpired() {
		if err := s.resetRepo.MarkUsed(ctx, resetToken.UserID); err != nil {
			log.Error().Err(err).Msg("Failed to mark expired reset token as used")
		}
		return utils.NewExpiredTokenError()
	}

	if resetToken.Used {
		return utils.NewUsedTokenError()
	}

	user, err := s.userRepo.GetByID(ctx, resetToken.UserID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return utils.NewTokenUserMissingError()
		}
		return err
	}

	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, salt, err := auth.HashPassword(newPassword, s.passwordCfg)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, user.ID, passwordHash, salt); err != nil {
		return err
	}

	if err := s.resetRepo.MarkUsed(ctx, user.ID); err != nil {
		return err
	}

	log.Info().Int64("user_id", user.ID).Msg("Password reset completed")

	return nil
}
