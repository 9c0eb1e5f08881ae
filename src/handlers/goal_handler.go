package handlers

import (
	"net/http"
	"time"

	"financezenn-server/src/finance"
	"financezenn-server/src/store"
	"financezenn-server/src/util"
)

func GetGoals(s store.GoalStore) http.HandlerFunc {
	return listHandler(s.ListGoals, "goals")
}

func CreateGoal(s store.GoalStore, c SummaryCache) http.HandlerFunc {
	return createHandler(util.ValidateGoalInput, s.CreateGoal, c, "goal")
}

func UpdateGoal(s store.GoalStore, c SummaryCache) http.HandlerFunc {
	return updateHandler(util.ValidateUpdateGoalRequest, s.UpdateGoal, c, "goal")
}

func DeleteGoal(s store.GoalStore, c SummaryCache) http.HandlerFunc {
	return deleteHandler(s.DeleteGoal, c, "goal")
}

func GetGoalsOverview(s store.GoalStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		goals, err := s.ListGoals(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list goals", err)
			return
		}
		writeJSON(w, http.StatusOK, finance.GoalsOverview(goals, time.Now()))
	}
}
