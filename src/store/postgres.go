package store

import (
	"context"
	"errors"
	"fmt"

	db "financezenn-server/src/db/sql"
	"financezenn-server/src/models"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is the RecordStore over a pgx pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// mapErr turns driver errors into the store's sentinel errors.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrConflict
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

func (s *PostgresStore) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	txs, err := db.GetTransactionsForUser(ctx, s.pool, userID)
	return txs, mapErr("list transactions", err)
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, userID int64, in models.TransactionInput) (*models.Transaction, error) {
	t, err := db.CreateTransaction(ctx, s.pool, userID, in)
	return t, mapErr("create transaction", err)
}

func (s *PostgresStore) UpdateTransaction(ctx context.Context, userID, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	t, err := db.UpdateTransaction(ctx, s.pool, userID, id, req)
	return t, mapErr("update transaction", err)
}

func (s *PostgresStore) DeleteTransaction(ctx context.Context, userID, id int64) error {
	return mapErr("delete transaction", db.DeleteTransaction(ctx, s.pool, userID, id))
}

func (s *PostgresStore) ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error) {
	invs, err := db.GetInvestmentsForUser(ctx, s.pool, userID)
	return invs, mapErr("list investments", err)
}

func (s *PostgresStore) CreateInvestment(ctx context.Context, userID int64, in models.InvestmentInput) (*models.Investment, error) {
	i, err := db.CreateInvestment(ctx, s.pool, userID, in)
	return i, mapErr("create investment", err)
}

func (s *PostgresStore) UpdateInvestment(ctx context.Context, userID, id int64, req models.UpdateInvestmentRequest) (*models.Investment, error) {
	i, err := db.UpdateInvestment(ctx, s.pool, userID, id, req)
	return i, mapErr("update investment", err)
}

func (s *PostgresStore) DeleteInvestment(ctx context.Context, userID, id int64) error {
	return mapErr("delete investment", db.DeleteInvestment(ctx, s.pool, userID, id))
}

func (s *PostgresStore) ListDebts(ctx context.Context, userID int64) ([]models.Debt, error) {
	debts, err := db.GetDebtsForUser(ctx, s.pool, userID)
	return debts, mapErr("list debts", err)
}

func (s *PostgresStore) CreateDebt(ctx context.Context, userID int64, in models.DebtInput) (*models.Debt, error) {
	d, err := db.CreateDebt(ctx, s.pool, userID, in)
	return d, mapErr("create debt", err)
}

func (s *PostgresStore) UpdateDebt(ctx context.Context, userID, id int64, req models.UpdateDebtRequest) (*models.Debt, error) {
	d, err := db.UpdateDebt(ctx, s.pool, userID, id, req)
	return d, mapErr("update debt", err)
}

func (s *PostgresStore) DeleteDebt(ctx context.Context, userID, id int64) error {
	return mapErr("delete debt", db.DeleteDebt(ctx, s.pool, userID, id))
}

func (s *PostgresStore) ListGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	goals, err := db.GetGoalsForUser(ctx, s.pool, userID)
	return goals, mapErr("list goals", err)
}

func (s *PostgresStore) CreateGoal(ctx context.Context, userID int64, in models.GoalInput) (*models.Goal, error) {
	g, err := db.CreateGoal(ctx, s.pool, userID, in)
	return g, mapErr("create goal", err)
}

func (s *PostgresStore) UpdateGoal(ctx context.Context, userID, id int64, req models.UpdateGoalRequest) (*models.Goal, error) {
	g, err := db.UpdateGoal(ctx, s.pool, userID, id, req)
	return g, mapErr("update goal", err)
}

func (s *PostgresStore) DeleteGoal(ctx context.Context, userID, id int64) error {
	return mapErr("delete goal", db.DeleteGoal(ctx, s.pool, userID, id))
}

func (s *PostgresStore) GetUserParams(ctx context.Context, userID int64) (*models.UserParams, error) {
	p, err := db.GetUserParams(ctx, s.pool, userID)
	return p, mapErr("get user params", err)
}

func (s *PostgresStore) UpsertUserParams(ctx context.Context, userID int64, req models.UpdateUserParamsRequest) (*models.UserParams, error) {
	p, err := db.UpsertUserParams(ctx, s.pool, userID, req)
	return p, mapErr("upsert user params", err)
}

func (s *PostgresStore) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	u, err := db.CreateUser(ctx, s.pool, username, email, passwordHash)
	return u, mapErr("create user", err)
}

func (s *PostgresStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := db.GetUserByID(ctx, s.pool, id)
	return u, mapErr("get user", err)
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := db.GetUserByUsername(ctx, s.pool, username)
	return u, mapErr("get user by username", err)
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := db.GetUserByEmail(ctx, s.pool, email)
	return u, mapErr("get user by email", err)
}

func (s *PostgresStore) UpdateUserLastLogin(ctx context.Context, id int64) error {
	return mapErr("update last login", db.UpdateUserLastLogin(ctx, s.pool, id))
}
