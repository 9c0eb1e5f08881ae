package handlers

import (
	"net/http"

	"financezenn-server/src/finance"
	"financezenn-server/src/store"
	"financezenn-server/src/util"
)

func GetDebts(s store.DebtStore) http.HandlerFunc {
	return listHandler(s.ListDebts, "debts")
}

func CreateDebt(s store.DebtStore, c SummaryCache) http.HandlerFunc {
	return createHandler(util.ValidateDebtInput, s.CreateDebt, c, "debt")
}

func UpdateDebt(s store.DebtStore, c SummaryCache) http.HandlerFunc {
	return updateHandler(util.ValidateUpdateDebtRequest, s.UpdateDebt, c, "debt")
}

func DeleteDebt(s store.DebtStore, c SummaryCache) http.HandlerFunc {
	return deleteHandler(s.DeleteDebt, c, "debt")
}

func GetDebtOverview(s store.DebtStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		debts, err := s.ListDebts(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list debts", err)
			return
		}
		writeJSON(w, http.StatusOK, finance.DebtOverview(debts))
	}
}
