package models

import "time"

// User represents a user account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session represents a server-side login session keyed by an opaque token.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IncomeEntry represents a single income record. Entries are immutable
// once created and belong exclusively to one user.
type IncomeEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseEntry represents a single expense record.
type ExpenseEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Budget represents a spending budget for a category. Budgets accumulate:
// setting a budget for the same category again adds another row rather
// than replacing the earlier one.
type Budget struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Goal represents a savings goal with a free-form deadline as entered in
// the form (YYYY-MM-DD from a date input).
type Goal struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Description  string    `json:"description"`
	TargetAmount float64   `json:"target_amount"`
	Deadline     string    `json:"deadline"`
	CreatedAt    time.Time `json:"created_at"`
}
