package storage

import "finance-tracker/internal/models"

// SetGoal records a savings goal for a user.
func (db *DB) SetGoal(userID int64, description string, targetAmount float64, deadline string) error {
	_, err := db.conn.Exec(
		"INSERT INTO goals (user_id, description, target_amount, deadline) VALUES (?, ?, ?, ?)",
		userID, description, targetAmount, deadline,
	)
	return err
}

// ListGoals retrieves all goals for a user in insertion order.
func (db *DB) ListGoals(userID int64) ([]models.Goal, error) {
	rows, err := db.conn.Query(
		"SELECT id, user_id, description, target_amount, deadline, created_at FROM goals WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Description, &g.TargetAmount, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}
