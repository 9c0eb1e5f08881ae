package db

import (
	"context"

	"financezenn-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, category, deadline, created_at, updated_at`

func scanGoal(row pgx.Row) (*models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Category, &g.Deadline, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func GetGoalsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY id ASC`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, userID int64, in models.GoalInput) (*models.Goal, error) {
	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, category, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + goalColumns
	return scanGoal(pool.QueryRow(ctx, query,
		userID, in.Name, in.TargetAmount, in.CurrentAmount, in.Category, in.Deadline))
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, userID, id int64, req models.UpdateGoalRequest) (*models.Goal, error) {
	query := `
		UPDATE goals
		SET name = COALESCE($3, name),
			target_amount = COALESCE($4, target_amount),
			current_amount = COALESCE($5, current_amount),
			category = COALESCE($6, category),
			deadline = COALESCE($7, deadline),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + goalColumns
	return scanGoal(pool.QueryRow(ctx, query,
		id, userID, req.Name, req.TargetAmount, req.CurrentAmount, req.Category, req.Deadline))
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, id int64) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
