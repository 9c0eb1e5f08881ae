package db

import (
	"context"

	"financezenn-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const investmentColumns = `id, user_id, name, amount, type, return_rate, current_value, created_at, updated_at`

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var i models.Investment
	err := row.Scan(&i.ID, &i.UserID, &i.Name, &i.Amount, &i.Type, &i.ReturnRate, &i.CurrentValue, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func GetInvestmentsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY id ASC`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		i, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, *i)
	}
	return investments, rows.Err()
}

func CreateInvestment(ctx context.Context, pool *pgxpool.Pool, userID int64, in models.InvestmentInput) (*models.Investment, error) {
	query := `
		INSERT INTO investments (user_id, name, amount, type, return_rate, current_value)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + investmentColumns
	return scanInvestment(pool.QueryRow(ctx, query,
		userID, in.Name, in.Amount, in.Type, in.ReturnRate, in.CurrentValue))
}

func UpdateInvestment(ctx context.Context, pool *pgxpool.Pool, userID, id int64, req models.UpdateInvestmentRequest) (*models.Investment, error) {
	query := `
		UPDATE investments
		SET name = COALESCE($3, name),
			amount = COALESCE($4, amount),
			type = COALESCE($5, type),
			return_rate = COALESCE($6, return_rate),
			current_value = COALESCE($7, current_value),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + investmentColumns
	return scanInvestment(pool.QueryRow(ctx, query,
		id, userID, req.Name, req.Amount, req.Type, req.ReturnRate, req.CurrentValue))
}

func DeleteInvestment(ctx context.Context, pool *pgxpool.Pool, userID, id int64) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM investments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
