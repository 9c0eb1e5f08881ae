package db

import (
	"context"

	"financezenn-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, user_id, description, amount, type::text, category, date, created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Date, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTransactionsForUser returns rows oldest first. The dashboard's recent list
// is the tail of this order.
func GetTransactionsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE user_id = $1
		ORDER BY date ASC, id ASC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, userID int64, in models.TransactionInput) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, description, amount, type, category, date)
		VALUES ($1, $2, $3, $4::transaction_type, $5, $6)
		RETURNING ` + transactionColumns
	return scanTransaction(pool.QueryRow(ctx, query,
		userID, in.Description, in.Amount, string(in.Type), in.Category, in.Date))
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET description = COALESCE($3, description),
			amount = COALESCE($4, amount),
			type = COALESCE($5::transaction_type, type),
			category = COALESCE($6, category),
			date = COALESCE($7, date),
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + transactionColumns
	return scanTransaction(pool.QueryRow(ctx, query,
		id, userID, req.Description, req.Amount, (*string)(req.Type), req.Category, req.Date))
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id int64) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
