// Package store is the record store: per-user persistence for transactions,
// investments, debts, goals, user parameters and accounts.
package store

import (
	"context"
	"errors"

	"financezenn-server/src/models"
)

var (
	// ErrNotFound means the row does not exist or belongs to another user.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique username or email is already taken.
	ErrConflict = errors.New("record already exists")
	// ErrUnavailable wraps backend failures so callers can tell them from
	// missing rows.
	ErrUnavailable = errors.New("store unavailable")
)

type TransactionStore interface {
	// ListTransactions returns the user's transactions ordered by date, then id.
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, in models.TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
}

type InvestmentStore interface {
	ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error)
	CreateInvestment(ctx context.Context, userID int64, in models.InvestmentInput) (*models.Investment, error)
	UpdateInvestment(ctx context.Context, userID, id int64, req models.UpdateInvestmentRequest) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, userID, id int64) error
}

type DebtStore interface {
	ListDebts(ctx context.Context, userID int64) ([]models.Debt, error)
	CreateDebt(ctx context.Context, userID int64, in models.DebtInput) (*models.Debt, error)
	UpdateDebt(ctx context.Context, userID, id int64, req models.UpdateDebtRequest) (*models.Debt, error)
	DeleteDebt(ctx context.Context, userID, id int64) error
}

type GoalStore interface {
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	CreateGoal(ctx context.Context, userID int64, in models.GoalInput) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, id int64, req models.UpdateGoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, id int64) error
}

type ParamsStore interface {
	// GetUserParams returns nil, nil when the user never saved parameters.
	GetUserParams(ctx context.Context, userID int64) (*models.UserParams, error)
	// UpsertUserParams creates the row with defaults for missing fields, or
	// merges the provided fields into the existing row.
	UpsertUserParams(ctx context.Context, userID int64, req models.UpdateUserParamsRequest) (*models.UserParams, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserLastLogin(ctx context.Context, id int64) error
}

// RecordStore is everything the HTTP layer needs from persistence.
type RecordStore interface {
	TransactionStore
	InvestmentStore
	DebtStore
	GoalStore
	ParamsStore
	UserStore
}

// Backend names accepted by DATA_BACKEND.
type Backend string

const (
	PostgresBackend Backend = "postgres"
	MemoryBackend   Backend = "memory"
)

func (b Backend) IsValid() bool {
	return b == PostgresBackend || b == MemoryBackend
}

var (
	_ RecordStore = (*MemoryStore)(nil)
	_ RecordStore = (*PostgresStore)(nil)
)
