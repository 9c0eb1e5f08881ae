package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"financezenn-server/src/logging"
	"financezenn-server/src/middleware"
	"financezenn-server/src/models"
	"financezenn-server/src/store"

	"github.com/go-chi/chi/v5"
)

// SummaryCache is the per-user dashboard cache. Handlers accept nil when
// caching is disabled. Set must refuse a summary whose generation was
// superseded by an Invalidate.
type SummaryCache interface {
	Get(userID int64) (summary models.FinancialSummary, ok bool)
	Generation(userID int64) uint64
	Set(userID int64, gen uint64, summary models.FinancialSummary) bool
	Invalidate(userID int64)
}

func logger() *slog.Logger {
	return logging.For(logging.ComponentHTTP)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger().Error("Failed to encode response", logging.FieldError, err)
	}
}

// currentUser reads the authenticated user id, answering 401 when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return false
	}
	return true
}

// storeError maps store failures onto status codes and logs the unexpected ones.
func storeError(w http.ResponseWriter, r *http.Request, userID int64, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, store.ErrConflict):
		http.Error(w, "already exists", http.StatusConflict)
	default:
		logger().ErrorContext(r.Context(), msg,
			logging.FieldUserID, userID,
			logging.FieldRequestID, middleware.RequestID(r.Context()),
			logging.FieldError, err)
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
	}
}

func invalidate(c SummaryCache, userID int64) {
	if c != nil {
		c.Invalidate(userID)
	}
}
