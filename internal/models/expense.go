package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Amount is a monetary value decoded from JSON. It accepts both a JSON
// number and a numeric string, and records whether the field was present
// and whether the value parsed. Absence and malformation are reported as
// different errors, so both states are tracked.
type Amount struct {
	Value float64
	Set   bool
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler for Amount
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Set = true
	a.Valid = false

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		a.Value = v
		a.Valid = true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	a.Value = v
	a.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler for Amount
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value)
}

// Expense represents a single recorded expense
type Expense struct {
	ID          int64     `json:"id,string" db:"id"`
	UserID      int64     `json:"user_id,string" db:"user_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"expense_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ExpenseCreate represents the data needed to record a new expense
type ExpenseCreate struct {
	UserID      int64  `json:"user_id,string" validate:"required"`
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ExpenseUpdate represents the fields of an expense that may be updated.
// Pointer fields distinguish absent fields from explicit zero values.
type ExpenseUpdate struct {
	Amount      *Amount `json:"amount"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// ExpenseQuery represents the filter and ordering options for listing expenses
type ExpenseQuery struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	Order     string
	Limit     int
}
