package storage

import "finance-tracker/internal/models"

// SetBudget records a budget for a category. There is no upsert: setting
// a budget for the same category again appends a new row.
func (db *DB) SetBudget(userID int64, category string, amount float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO budgets (user_id, category, amount) VALUES (?, ?, ?)",
		userID, category, amount,
	)
	return err
}

// ListBudgets retrieves all budgets for a user in insertion order.
func (db *DB) ListBudgets(userID int64) ([]models.Budget, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, category, amount, created_at FROM budgets WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}
