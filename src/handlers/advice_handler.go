package handlers

import (
	"context"
	"errors"
	"net/http"

	"financezenn-server/src/advisor"
	"financezenn-server/src/logging"
	"financezenn-server/src/models"
	"financezenn-server/src/store"
)

// Advisor produces free-text guidance. A nil Advisor disables the advice routes.
type Advisor interface {
	FinancialAdvice(ctx context.Context, data advisor.FinancialData) (string, error)
	DebtPayoffPlan(ctx context.Context, debts []models.Debt) (string, error)
	InvestmentAdvice(ctx context.Context, investments []models.Investment) (string, error)
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

func writeAdvice(w http.ResponseWriter, r *http.Request, userID int64, advice string, err error) {
	if err != nil {
		logger().ErrorContext(r.Context(), "Failed to generate advice", logging.FieldUserID, userID, logging.FieldError, err)
		if errors.Is(err, advisor.ErrNotConfigured) {
			http.Error(w, "advisor not configured", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "advisor unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, adviceResponse{Advice: advice})
}

func GetFinancialAdvice(s store.RecordStore, c SummaryCache, a Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		if a == nil {
			http.Error(w, "advisor not configured", http.StatusServiceUnavailable)
			return
		}
		summary, err := summaryFor(r.Context(), s, c, userID)
		if err != nil {
			storeError(w, r, userID, "Failed to compute summary", err)
			return
		}
		advice, err := a.FinancialAdvice(r.Context(), advisor.FinancialDataFromSummary(summary))
		writeAdvice(w, r, userID, advice, err)
	}
}

func GetDebtAdvice(s store.DebtStore, a Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		if a == nil {
			http.Error(w, "advisor not configured", http.StatusServiceUnavailable)
			return
		}
		debts, err := s.ListDebts(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list debts", err)
			return
		}
		if len(debts) == 0 {
			http.Error(w, "no debts registered", http.StatusBadRequest)
			return
		}
		advice, err := a.DebtPayoffPlan(r.Context(), debts)
		writeAdvice(w, r, userID, advice, err)
	}
}

func GetInvestmentAdvice(s store.InvestmentStore, a Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		if a == nil {
			http.Error(w, "advisor not configured", http.StatusServiceUnavailable)
			return
		}
		investments, err := s.ListInvestments(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list investments", err)
			return
		}
		if len(investments) == 0 {
			http.Error(w, "no investments registered", http.StatusBadRequest)
			return
		}
		advice, err := a.InvestmentAdvice(r.Context(), investments)
		writeAdvice(w, r, userID, advice, err)
	}
}
