// Package service implements the application's business logic on top of
// the repository layer.
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/spendtrack/backend/internal/models"
)

// ResetNotifier delivers password reset links to users
type ResetNotifier interface {
	SendResetLink(ctx context.Context, user *models.User, link string) error
}

// LogResetNotifier writes reset links to the application log instead of
// sending mail. It stands in for a real mail sender in environments
// without an SMTP relay.
// TODO: add an SMTP-backed notifier once a relay is provisioned.
type LogResetNotifier struct{}

// NewLogResetNotifier creates a new LogResetNotifier
func NewLogResetNotifier() *LogResetNotifier {
	return &LogResetNotifier{}
}

// SendResetLink logs the reset link for the given user
func (n *LogResetNotifier) SendResetLink(_ context.Context, user *models.User, link string) error {
	log.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Str("reset_link", link).
		Msg("Password reset link generated")
	return nil
}
