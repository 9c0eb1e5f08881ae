package handlers

import (
	"net/http"

	"financezenn-server/src/finance"
	"financezenn-server/src/store"
	"financezenn-server/src/util"
)

func GetInvestments(s store.InvestmentStore) http.HandlerFunc {
	return listHandler(s.ListInvestments, "investments")
}

func CreateInvestment(s store.InvestmentStore, c SummaryCache) http.HandlerFunc {
	return createHandler(util.ValidateInvestmentInput, s.CreateInvestment, c, "investment")
}

func UpdateInvestment(s store.InvestmentStore, c SummaryCache) http.HandlerFunc {
	return updateHandler(util.ValidateUpdateInvestmentRequest, s.UpdateInvestment, c, "investment")
}

func DeleteInvestment(s store.InvestmentStore, c SummaryCache) http.HandlerFunc {
	return deleteHandler(s.DeleteInvestment, c, "investment")
}

// GetPortfolioOverview returns totals and per-investment gains.
func GetPortfolioOverview(s store.InvestmentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		investments, err := s.ListInvestments(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list investments", err)
			return
		}
		writeJSON(w, http.StatusOK, finance.PortfolioOverview(investments))
	}
}
