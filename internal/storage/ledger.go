package storage

import (
	"database/sql"

	"finance-tracker/internal/models"
)

// AddIncome records an income entry for a user.
func (db *DB) AddIncome(userID int64, amount float64, category string) error {
	_, err := db.conn.Exec(
		"INSERT INTO income (user_id, amount, category) VALUES (?, ?, ?)",
		userID, amount, category,
	)
	return err
}

// AddExpense records an expense entry for a user.
func (db *DB) AddExpense(userID int64, amount float64, category string) error {
	_, err := db.conn.Exec(
		"INSERT INTO expenses (user_id, amount, category) VALUES (?, ?, ?)",
		userID, amount, category,
	)
	return err
}

// TotalIncome sums all income amounts for a user. The result is invalid
// (not zero) when the user has no income entries, so callers can tell
// "no entries yet" apart from a zero balance.
func (db *DB) TotalIncome(userID int64) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := db.conn.QueryRow(
		"SELECT SUM(amount) FROM income WHERE user_id = ?",
		userID,
	).Scan(&total)
	return total, err
}

// TotalExpenses sums all expense amounts for a user.
func (db *DB) TotalExpenses(userID int64) (sql.NullFloat64, error) {
	var total sql.NullFloat64
	err := db.conn.QueryRow(
		"SELECT SUM(amount) FROM expenses WHERE user_id = ?",
		userID,
	).Scan(&total)
	return total, err
}

// ListIncome retrieves all income entries for a user, newest first.
func (db *DB) ListIncome(userID int64) ([]models.IncomeEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, amount, category, created_at FROM income WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.IncomeEntry
	for rows.Next() {
		var e models.IncomeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListExpenses retrieves all expense entries for a user, newest first.
func (db *DB) ListExpenses(userID int64) ([]models.ExpenseEntry, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, amount, category, created_at FROM expenses WHERE user_id = ? ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ExpenseEntry
	for rows.Next() {
		var e models.ExpenseEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
