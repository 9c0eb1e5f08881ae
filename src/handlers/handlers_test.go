package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"financezenn-server/src/middleware"
	"financezenn-server/src/models"
	"financezenn-server/src/store"

	"github.com/go-chi/chi/v5"
)

const testUser int64 = 7

func newRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func asUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(middleware.WithUser(r.Context(), userID, "tester"))
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[int64]models.FinancialSummary
	gens        map[int64]uint64
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[int64]models.FinancialSummary),
		gens:    make(map[int64]uint64),
	}
}

func (c *fakeCache) Get(userID int64) (models.FinancialSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[userID]
	return s, ok
}

func (c *fakeCache) Generation(userID int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[userID]
}

func (c *fakeCache) Set(userID int64, gen uint64, s models.FinancialSummary) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[userID] != gen {
		return false
	}
	c.entries[userID] = s
	return true
}

func (c *fakeCache) Invalidate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[userID]++
	delete(c.entries, userID)
	c.invalidated++
}

// brokenStore fails every list call like an unreachable database would.
type brokenStore struct {
	*store.MemoryStore
}

func (brokenStore) ListTransactions(context.Context, int64) ([]models.Transaction, error) {
	return nil, store.ErrUnavailable
}

func (brokenStore) ListDebts(context.Context, int64) ([]models.Debt, error) {
	return nil, store.ErrUnavailable
}

func mustCreateTx(t *testing.T, s *store.MemoryStore, userID int64, typ models.TransactionType, amount int64, category string) models.Transaction {
	t.Helper()
	tx, err := s.CreateTransaction(context.Background(), userID, models.TransactionInput{
		Description: "seed",
		Amount:      amount,
		Type:        typ,
		Category:    category,
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	return *tx
}

func TestTransactionLifecycle(t *testing.T) {
	s := store.NewMemoryStore()
	cache := newFakeCache()

	rec := serve(CreateTransaction(s, cache), asUser(newRequest(http.MethodPost, "/api/transactions",
		`{"description":"Salário","amount":500000,"type":"income","category":"Salário","date":"2024-01-05T00:00:00Z"}`), testUser))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[models.Transaction](t, rec)
	if created.ID == 0 || created.UserID != testUser || created.Amount != 500000 {
		t.Fatalf("created = %+v", created)
	}

	rec = serve(GetTransactions(s), asUser(newRequest(http.MethodGet, "/api/transactions", ""), testUser))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if list := decodeBody[[]models.Transaction](t, rec); len(list) != 1 {
		t.Fatalf("list len = %d, want 1", len(list))
	}

	id := "1"
	if created.ID != 1 {
		t.Fatalf("expected first id to be 1, got %d", created.ID)
	}
	rec = serve(UpdateTransaction(s, cache), withID(asUser(newRequest(http.MethodPut, "/api/transactions/1", `{"amount":450000}`), testUser), id))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	if updated := decodeBody[models.Transaction](t, rec); updated.Amount != 450000 || updated.Description != "Salário" {
		t.Fatalf("updated = %+v", updated)
	}

	rec = serve(DeleteTransaction(s, cache), withID(asUser(newRequest(http.MethodDelete, "/api/transactions/1", ""), testUser), id))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = serve(DeleteTransaction(s, cache), withID(asUser(newRequest(http.MethodDelete, "/api/transactions/1", ""), testUser), id))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}

	if cache.invalidated != 3 {
		t.Errorf("cache invalidated %d times, want 3", cache.invalidated)
	}
}

func TestCreateTransactionRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"description":`},
		{"missing description", `{"amount":100,"type":"income","category":"x","date":"2024-01-05T00:00:00Z"}`},
		{"negative amount", `{"description":"a","amount":-1,"type":"income","category":"x","date":"2024-01-05T00:00:00Z"}`},
		{"unknown type", `{"description":"a","amount":1,"type":"transfer","category":"x","date":"2024-01-05T00:00:00Z"}`},
		{"missing date", `{"description":"a","amount":1,"type":"expense","category":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewMemoryStore()
			rec := serve(CreateTransaction(s, nil), asUser(newRequest(http.MethodPost, "/api/transactions", tt.body), testUser))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestWritesAreScopedToOwner(t *testing.T) {
	s := store.NewMemoryStore()
	tx := mustCreateTx(t, s, testUser, models.TransactionExpense, 1000, "Lazer")
	id := "1"
	if tx.ID != 1 {
		t.Fatalf("expected id 1, got %d", tx.ID)
	}

	rec := serve(UpdateTransaction(s, nil), withID(asUser(newRequest(http.MethodPut, "/", `{"amount":1}`), testUser+1), id))
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign update status = %d, want 404", rec.Code)
	}
	rec = serve(DeleteTransaction(s, nil), withID(asUser(newRequest(http.MethodDelete, "/", ""), testUser+1), id))
	if rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete status = %d, want 404", rec.Code)
	}

	rec = serve(GetTransactions(s), asUser(newRequest(http.MethodGet, "/", ""), testUser+1))
	if list := decodeBody[[]models.Transaction](t, rec); len(list) != 0 {
		t.Errorf("other user sees %d transactions", len(list))
	}
}

func TestHandlersRequireUser(t *testing.T) {
	s := store.NewMemoryStore()
	handlers := map[string]http.HandlerFunc{
		"transactions": GetTransactions(s),
		"summary":      GetSummary(s, nil),
		"params":       GetParams(s),
		"me":           GetMe(s),
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := serve(h, newRequest(http.MethodGet, "/", ""))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestInvalidIDParam(t *testing.T) {
	s := store.NewMemoryStore()
	for _, id := range []string{"abc", "0", "-3"} {
		rec := serve(DeleteGoal(s, nil), withID(asUser(newRequest(http.MethodDelete, "/", ""), testUser), id))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q: status = %d, want 400", id, rec.Code)
		}
	}
}

func TestParamsDefaultsAndUpdate(t *testing.T) {
	s := store.NewMemoryStore()
	cache := newFakeCache()

	rec := serve(GetParams(s), asUser(newRequest(http.MethodGet, "/api/params", ""), testUser))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	p := decodeBody[models.UserParams](t, rec)
	if p.MesesReserva != models.DefaultMesesReserva || p.Caixa != 0 || p.UserID != testUser {
		t.Fatalf("defaults = %+v", p)
	}

	rec = serve(UpdateParams(s, cache), asUser(newRequest(http.MethodPut, "/api/params", `{"caixa":1000000,"mesesReserva":6}`), testUser))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rec.Code, rec.Body.String())
	}
	p = decodeBody[models.UserParams](t, rec)
	if p.Caixa != 1000000 || p.MesesReserva != 6 {
		t.Fatalf("saved = %+v", p)
	}
	if cache.invalidated != 1 {
		t.Errorf("cache invalidated %d times, want 1", cache.invalidated)
	}

	rec = serve(UpdateParams(s, cache), asUser(newRequest(http.MethodPut, "/api/params", `{"caixa":-5}`), testUser))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative caixa status = %d, want 400", rec.Code)
	}
}

func TestOverviews(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	if _, err := s.CreateDebt(ctx, testUser, models.DebtInput{Name: "Cartão", Amount: 200000, InterestRate: 1000, MinPayment: 20000}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateInvestment(ctx, testUser, models.InvestmentInput{Name: "CDB", Amount: 100000, Type: "renda_fixa", CurrentValue: 110000}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateGoal(ctx, testUser, models.GoalInput{Name: "Viagem", TargetAmount: 100000, CurrentAmount: 25000}); err != nil {
		t.Fatal(err)
	}

	rec := serve(GetDebtOverview(s), asUser(newRequest(http.MethodGet, "/", ""), testUser))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"Cartão"`) {
		t.Errorf("debt overview = %d %s", rec.Code, rec.Body.String())
	}
	rec = serve(GetPortfolioOverview(s), asUser(newRequest(http.MethodGet, "/", ""), testUser))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"CDB"`) {
		t.Errorf("portfolio overview = %d %s", rec.Code, rec.Body.String())
	}
	rec = serve(GetGoalsOverview(s), asUser(newRequest(http.MethodGet, "/", ""), testUser))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"Viagem"`) {
		t.Errorf("goals overview = %d %s", rec.Code, rec.Body.String())
	}
}
