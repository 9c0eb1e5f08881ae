package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"financezenn-server/src/models"
)

// MemoryStore keeps everything in process memory. It backs the memory
// data backend and the handler tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	now    func() time.Time

	transactions map[int64]models.Transaction
	investments  map[int64]models.Investment
	debts        map[int64]models.Debt
	goals        map[int64]models.Goal
	params       map[int64]models.UserParams
	users        map[int64]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:          func() time.Time { return time.Now().UTC() },
		transactions: make(map[int64]models.Transaction),
		investments:  make(map[int64]models.Investment),
		debts:        make(map[int64]models.Debt),
		goals:        make(map[int64]models.Goal),
		params:       make(map[int64]models.UserParams),
		users:        make(map[int64]models.User),
	}
}

func (m *MemoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

// owned collects the user's rows from a map, sorted by cmpFn.
func owned[T any](rows map[int64]T, keep func(T) bool, cmpFn func(a, b T) int) []T {
	out := make([]T, 0)
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, cmpFn)
	return out
}

// Transactions

func (m *MemoryStore) ListTransactions(_ context.Context, userID int64) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return owned(m.transactions,
		func(t models.Transaction) bool { return t.UserID == userID },
		func(a, b models.Transaction) int {
			if c := a.Date.Compare(b.Date); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		}), nil
}

func (m *MemoryStore) CreateTransaction(_ context.Context, userID int64, in models.TransactionInput) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	t := models.Transaction{
		ID:          m.id(),
		UserID:      userID,
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.transactions[t.ID] = t
	return &t, nil
}

func (m *MemoryStore) UpdateTransaction(_ context.Context, userID, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.transactions[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Date != nil {
		t.Date = *req.Date
	}
	t.UpdatedAt = m.now()
	m.transactions[id] = t
	return &t, nil
}

func (m *MemoryStore) DeleteTransaction(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.transactions[id]; !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(m.transactions, id)
	return nil
}

// Investments

func (m *MemoryStore) ListInvestments(_ context.Context, userID int64) ([]models.Investment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return owned(m.investments,
		func(i models.Investment) bool { return i.UserID == userID },
		func(a, b models.Investment) int { return cmp.Compare(a.ID, b.ID) }), nil
}

func (m *MemoryStore) CreateInvestment(_ context.Context, userID int64, in models.InvestmentInput) (*models.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	i := models.Investment{
		ID:           m.id(),
		UserID:       userID,
		Name:         in.Name,
		Amount:       in.Amount,
		Type:         in.Type,
		ReturnRate:   in.ReturnRate,
		CurrentValue: in.CurrentValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.investments[i.ID] = i
	return &i, nil
}

func (m *MemoryStore) UpdateInvestment(_ context.Context, userID, id int64, req models.UpdateInvestmentRequest) (*models.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.investments[id]
	if !ok || i.UserID != userID {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		i.Name = *req.Name
	}
	if req.Amount != nil {
		i.Amount = *req.Amount
	}
	if req.Type != nil {
		i.Type = *req.Type
	}
	if req.ReturnRate != nil {
		i.ReturnRate = *req.ReturnRate
	}
	if req.CurrentValue != nil {
		i.CurrentValue = *req.CurrentValue
	}
	i.UpdatedAt = m.now()
	m.investments[id] = i
	return &i, nil
}

func (m *MemoryStore) DeleteInvestment(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.investments[id]; !ok || i.UserID != userID {
		return ErrNotFound
	}
	delete(m.investments, id)
	return nil
}

// Debts

func (m *MemoryStore) ListDebts(_ context.Context, userID int64) ([]models.Debt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return owned(m.debts,
		func(d models.Debt) bool { return d.UserID == userID },
		func(a, b models.Debt) int { return cmp.Compare(a.ID, b.ID) }), nil
}

func (m *MemoryStore) CreateDebt(_ context.Context, userID int64, in models.DebtInput) (*models.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	d := models.Debt{
		ID:           m.id(),
		UserID:       userID,
		Name:         in.Name,
		Amount:       in.Amount,
		InterestRate: in.InterestRate,
		MinPayment:   in.MinPayment,
		DueDate:      in.DueDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.debts[d.ID] = d
	return &d, nil
}

func (m *MemoryStore) UpdateDebt(_ context.Context, userID, id int64, req models.UpdateDebtRequest) (*models.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.debts[id]
	if !ok || d.UserID != userID {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Amount != nil {
		d.Amount = *req.Amount
	}
	if req.InterestRate != nil {
		d.InterestRate = *req.InterestRate
	}
	if req.MinPayment != nil {
		d.MinPayment = *req.MinPayment
	}
	if req.DueDate != nil {
		d.DueDate = req.DueDate
	}
	d.UpdatedAt = m.now()
	m.debts[id] = d
	return &d, nil
}

func (m *MemoryStore) DeleteDebt(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.debts[id]; !ok || d.UserID != userID {
		return ErrNotFound
	}
	delete(m.debts, id)
	return nil
}

// Goals

func (m *MemoryStore) ListGoals(_ context.Context, userID int64) ([]models.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return owned(m.goals,
		func(g models.Goal) bool { return g.UserID == userID },
		func(a, b models.Goal) int { return cmp.Compare(a.ID, b.ID) }), nil
}

func (m *MemoryStore) CreateGoal(_ context.Context, userID int64, in models.GoalInput) (*models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	g := models.Goal{
		ID:            m.id(),
		UserID:        userID,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Category:      in.Category,
		Deadline:      in.Deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.goals[g.ID] = g
	return &g, nil
}

func (m *MemoryStore) UpdateGoal(_ context.Context, userID, id int64, req models.UpdateGoalRequest) (*models.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[id]
	if !ok || g.UserID != userID {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.TargetAmount != nil {
		g.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		g.CurrentAmount = *req.CurrentAmount
	}
	if req.Category != nil {
		g.Category = req.Category
	}
	if req.Deadline != nil {
		g.Deadline = req.Deadline
	}
	g.UpdatedAt = m.now()
	m.goals[id] = g
	return &g, nil
}

func (m *MemoryStore) DeleteGoal(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.goals[id]; !ok || g.UserID != userID {
		return ErrNotFound
	}
	delete(m.goals, id)
	return nil
}

// Params

func (m *MemoryStore) GetUserParams(_ context.Context, userID int64) (*models.UserParams, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.params[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryStore) UpsertUserParams(_ context.Context, userID int64, req models.UpdateUserParamsRequest) (*models.UserParams, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.params[userID]
	if !ok {
		p = models.DefaultUserParams(userID)
	}
	ApplyParamsUpdate(&p, req)
	m.params[userID] = p
	return &p, nil
}

// ApplyParamsUpdate merges the provided fields into p.
func ApplyParamsUpdate(p *models.UserParams, req models.UpdateUserParamsRequest) {
	if req.Caixa != nil {
		p.Caixa = *req.Caixa
	}
	if req.NomeUsuario != nil {
		p.NomeUsuario = *req.NomeUsuario
	}
	if req.MesesReserva != nil {
		p.MesesReserva = *req.MesesReserva
	}
	if req.MetaPatrimonio != nil {
		p.MetaPatrimonio = *req.MetaPatrimonio
	}
	if req.TaxaRetorno != nil {
		p.TaxaRetorno = *req.TaxaRetorno
	}
}

// Users

func (m *MemoryStore) CreateUser(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			return nil, ErrConflict
		}
	}
	u := models.User{
		ID:           m.id(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    m.now(),
	}
	m.users[u.ID] = u
	return &u, nil
}

func (m *MemoryStore) findUser(match func(models.User) bool) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	return m.findUser(func(u models.User) bool { return u.ID == id })
}

func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	return m.findUser(func(u models.User) bool { return strings.EqualFold(u.Username, username) })
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.findUser(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (m *MemoryStore) UpdateUserLastLogin(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	now := m.now()
	u.LastLogin = &now
	m.users[id] = u
	return nil
}
