package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"financezenn-server/src/middleware"
	"financezenn-server/src/models"
	"financezenn-server/src/store"
)

func newTestServer(t *testing.T, demo bool) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(Deps{
		Store:          store.NewMemoryStore(),
		Auth:           middleware.NewAuth("router-secret", time.Hour),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		AllowedOrigins: []string{"http://localhost:5173"},
		DemoMode:       demo,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func registerUser(t *testing.T, baseURL string) string {
	t.Helper()
	resp := do(t, http.MethodPost, baseURL+"/api/register", "", models.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "Forte#2024",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	var reg models.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		t.Fatal(err)
	}
	return reg.Token
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, false)
	resp := do(t, http.MethodGet, srv.URL+"/health", "", nil)
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("health = %d %q", resp.StatusCode, body)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	srv := newTestServer(t, false)
	paths := []string{
		"/api/me",
		"/api/transactions",
		"/api/investments/overview",
		"/api/dashboard/summary",
		"/api/params",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			resp := do(t, http.MethodGet, srv.URL+p, "", nil)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", resp.StatusCode)
			}
			resp = do(t, http.MethodGet, srv.URL+p, "not-a-jwt", nil)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("bad token status = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestRoutesEndToEnd(t *testing.T) {
	srv := newTestServer(t, false)
	token := registerUser(t, srv.URL)

	// the user took id 1
	resp := do(t, http.MethodPost, srv.URL+"/api/debts", token, models.DebtInput{Name: "Cartão", Amount: 120000, MinPayment: 10000})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create debt status = %d", resp.StatusCode)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/me", http.StatusOK},
		{http.MethodGet, "/api/debts", http.StatusOK},
		{http.MethodGet, "/api/debts/overview", http.StatusOK},
		{http.MethodGet, "/api/investments/overview", http.StatusOK},
		{http.MethodGet, "/api/goals/overview", http.StatusOK},
		{http.MethodGet, "/api/params", http.StatusOK},
		{http.MethodGet, "/api/dashboard/summary", http.StatusOK},
		{http.MethodGet, "/api/dashboard/insights", http.StatusOK},
		{http.MethodGet, "/api/dashboard/charts/expenses.png", http.StatusNoContent},
		{http.MethodPost, "/api/advice/financial", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/notifications", http.StatusServiceUnavailable},
		{http.MethodDelete, "/api/debts/2", http.StatusNoContent},
		{http.MethodDelete, "/api/debts/2", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp := do(t, tt.method, srv.URL+tt.path, token, nil)
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestDemoModeIsReadOnly(t *testing.T) {
	srv := newTestServer(t, true)
	token := registerUser(t, srv.URL)

	resp := do(t, http.MethodPost, srv.URL+"/api/transactions", token, models.TransactionInput{
		Description: "x", Amount: 1, Type: models.TransactionIncome, Category: "x", Date: time.Now(),
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("demo write status = %d, want 403", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/api/transactions", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("demo read status = %d, want 200", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, false)
	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/transactions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("preflight status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow origin = %q", got)
	}
}
