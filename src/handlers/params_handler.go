package handlers

import (
	"net/http"

	"financezenn-server/src/finance"
	"financezenn-server/src/logging"
	"financezenn-server/src/models"
	"financezenn-server/src/store"
	"financezenn-server/src/util"
)

// GetParams returns the stored parameters, or the defaults before the first save.
func GetParams(s store.ParamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		p, err := s.GetUserParams(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to get user params", err)
			return
		}
		writeJSON(w, http.StatusOK, finance.EffectiveParams(userID, p))
	}
}

func UpdateParams(s store.ParamsStore, c SummaryCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req models.UpdateUserParamsRequest
		if !decode(w, r, &req) {
			return
		}
		if err := util.ValidateUpdateUserParamsRequest(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p, err := s.UpsertUserParams(r.Context(), userID, req)
		if err != nil {
			storeError(w, r, userID, "Failed to save user params", err)
			return
		}
		invalidate(c, userID)
		logger().InfoContext(r.Context(), "Saved user params", logging.FieldUserID, userID)
		writeJSON(w, http.StatusOK, p)
	}
}
