// Package models defines the data structures shared between the
// repository, service, and handler layers.
package models

import "time"

// User represents a registered account. Email may be empty: accounts
// can be created with a username and password only.
type User struct {
	ID           int64     `json:"id,string" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email,omitempty" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Salt         string    `json:"-" db:"salt"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserRegistration represents the data needed to register a new user.
// The email is optional; when given it must be well-formed.
type UserRegistration struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserCredentials represents the data needed to authenticate a user
type UserCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate represents the fields of a user that may be updated
type UserUpdate struct {
	Username string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// PasswordChange represents a request to change the current password
type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// Sanitize returns a copy of the user with sensitive fields removed
func (u *User) Sanitize() User {
	sanitized := *u
	sanitized.PasswordHash = ""
	sanitized.Salt = ""
	return sanitized
}
