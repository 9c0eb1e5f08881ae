package db

import (
	"context"

	"financezenn-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const debtColumns = `id, user_id, name, amount, interest_rate, min_payment, due_date, created_at, updated_at`

func scanDebt(row pgx.Row) (*models.Debt, error) {
	var d models.Debt
	err := row.Scan(&d.ID, &d.UserID, &d.Name, &d.Amount, &d.InterestRate, &d.MinPayment, &d.DueDate, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func GetDebtsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE user_id = $1 ORDER BY id ASC`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := []models.Debt{}
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, *d)
	}
	return debts, rows.Err()
}

func CreateDebt(ctx context.Context, pool *pgxpool.Pool, userID int64, in models.DebtInput) (*models.Debt, error) {
	query := `
		INSERT INTO debts (user_id, name, amount, interest_rate, min_payment, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + debtColumns
	return scanDebt(pool.QueryRow(ctx, query,
		userID, in.Name, in.Amount, in.InterestRate, in.MinPayment, in.DueDate))
}

func UpdateDebt(ctx context.Context, pool *pgxpool.Pool, userID, id int64, req models.UpdateDebtRequest) (*models.Debt, error) {
	query := `
		UPDATE debts
		SET name = COALESCE($3, name),
			amount = COALESCE($4, amount),
			interest_rate = COALESCE($5, interest_rate),
			min_payment = COALESCE($6, min_payment),
			due_date = COALESCE($7, due_date),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + debtColumns
	return scanDebt(pool.QueryRow(ctx, query,
		id, userID, req.Name, req.Amount, req.InterestRate, req.MinPayment, req.DueDate))
}

func DeleteDebt(ctx context.Context, pool *pgxpool.Pool, userID, id int64) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM debts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
