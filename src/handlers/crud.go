package handlers

import (
	"context"
	"net/http"

	"financezenn-server/src/logging"
)

// The entity handlers below share these shapes; each entity file binds them
// to its store methods and validators.

func listHandler[T any](list func(context.Context, int64) ([]T, error), entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		items, err := list(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list "+entity, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createHandler[In, Out any](
	validate func(In) error,
	create func(context.Context, int64, In) (*Out, error),
	cache SummaryCache,
	entity string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		var in In
		if !decode(w, r, &in) {
			return
		}
		if err := validate(in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created, err := create(r.Context(), userID, in)
		if err != nil {
			storeError(w, r, userID, "Failed to create "+entity, err)
			return
		}
		invalidate(cache, userID)
		logger().InfoContext(r.Context(), "Created "+entity, logging.FieldUserID, userID)
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateHandler[Req, Out any](
	validate func(Req) error,
	update func(context.Context, int64, int64, Req) (*Out, error),
	cache SummaryCache,
	entity string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		var req Req
		if !decode(w, r, &req) {
			return
		}
		if err := validate(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updated, err := update(r.Context(), userID, id, req)
		if err != nil {
			storeError(w, r, userID, "Failed to update "+entity, err)
			return
		}
		invalidate(cache, userID)
		logger().InfoContext(r.Context(), "Updated "+entity, logging.FieldUserID, userID, "id", id)
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteHandler(del func(context.Context, int64, int64) error, cache SummaryCache, entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := idParam(w, r)
		if !ok {
			return
		}
		if err := del(r.Context(), userID, id); err != nil {
			storeError(w, r, userID, "Failed to delete "+entity, err)
			return
		}
		invalidate(cache, userID)
		logger().InfoContext(r.Context(), "Deleted "+entity, logging.FieldUserID, userID, "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
