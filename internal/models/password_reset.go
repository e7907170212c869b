package models

import "time"

// PasswordResetToken represents a single-use password reset token.
// Only the SHA-256 hash of the token is stored; the plain token exists
// only in the reset link sent to the user. Each user has at most one
// active token, so requesting a new reset replaces the previous one.
type PasswordResetToken struct {
	UserID    int64     `json:"user_id,string" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Used      bool      `json:"used" db:"used"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsExpired checks whether the token has passed its expiry time
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// ForgotPasswordRequest represents a request to start a password reset.
// The identifier may be a username or an email address.
type ForgotPasswordRequest struct {
	Identifier string `json:"username_or_email" validate:"required"`
}

// ResetPasswordRequest represents a request to complete a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
