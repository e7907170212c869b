package models

import "time"

// Budget represents a monthly spending limit for a category.
// Month is stored as "YYYY-MM"; one budget exists per user, category,
// and month, and setting it again replaces the previous limit. The
// limit travels as "amount" on the wire.
type Budget struct {
	ID        int64     `json:"id,string" db:"id"`
	UserID    int64     `json:"user_id,string" db:"user_id"`
	Category  string    `json:"category" db:"category"`
	Limit     float64   `json:"amount" db:"limit_amount"`
	Month     string    `json:"month" db:"month"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BudgetSet represents the data needed to set a budget
type BudgetSet struct {
	UserID   int64  `json:"user_id,string" validate:"required"`
	Category string `json:"category"`
	Limit    Amount `json:"amount"`
	Month    string `json:"month"`
}

// BudgetStatus pairs a budget with the spending recorded against it
type BudgetStatus struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"amount"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Month     string  `json:"month"`
}
