package handlers

import (
	"context"
	"errors"
	"net/http"

	"financezenn-server/src/charts"
	"financezenn-server/src/finance"
	"financezenn-server/src/logging"
	"financezenn-server/src/models"
	"financezenn-server/src/store"

	"golang.org/x/sync/errgroup"
)

// loadRecords fetches the four lists and the params concurrently. Any failure
// fails the whole snapshot.
func loadRecords(ctx context.Context, s store.RecordStore, userID int64) (finance.Records, error) {
	rec := finance.Records{UserID: userID}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rec.Transactions, err = s.ListTransactions(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		rec.Investments, err = s.ListInvestments(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		rec.Debts, err = s.ListDebts(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		rec.Goals, err = s.ListGoals(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		rec.Params, err = s.GetUserParams(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return finance.Records{}, err
	}
	return rec, nil
}

// summaryFor serves the cached summary or computes one. The generation is
// taken before loading so a write racing the load keeps its result out of
// the cache.
func summaryFor(ctx context.Context, s store.RecordStore, c SummaryCache, userID int64) (models.FinancialSummary, error) {
	var gen uint64
	if c != nil {
		if summary, ok := c.Get(userID); ok {
			return summary, nil
		}
		gen = c.Generation(userID)
	}
	rec, err := loadRecords(ctx, s, userID)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	summary := finance.Summarize(rec)
	if c != nil && !c.Set(userID, gen, summary) {
		logger().DebugContext(ctx, "Skipped caching superseded summary", logging.FieldUserID, userID)
	}
	return summary, nil
}

func GetSummary(s store.RecordStore, c SummaryCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		summary, err := summaryFor(r.Context(), s, c, userID)
		if err != nil {
			storeError(w, r, userID, "Failed to compute summary", err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

func GetInsights(s store.RecordStore, c SummaryCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		summary, err := summaryFor(r.Context(), s, c, userID)
		if err != nil {
			storeError(w, r, userID, "Failed to compute summary", err)
			return
		}
		writeJSON(w, http.StatusOK, finance.Insights(summary))
	}
}

func GetCashflowChart(s store.RecordStore, c SummaryCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		summary, err := summaryFor(r.Context(), s, c, userID)
		if err != nil {
			storeError(w, r, userID, "Failed to compute summary", err)
			return
		}
		writePNG(w, r, userID, func() ([]byte, error) { return charts.CashflowPNG(summary) })
	}
}

func GetExpensesChart(s store.TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}
		txs, err := s.ListTransactions(r.Context(), userID)
		if err != nil {
			storeError(w, r, userID, "Failed to list transactions", err)
			return
		}
		writePNG(w, r, userID, func() ([]byte, error) {
			return charts.ExpensesPNG(finance.ExpensesByCategory(txs))
		})
	}
}

func writePNG(w http.ResponseWriter, r *http.Request, userID int64, render func() ([]byte, error)) {
	img, err := render()
	if errors.Is(err, charts.ErrNoData) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		logger().ErrorContext(r.Context(), "Failed to render chart", logging.FieldUserID, userID, logging.FieldError, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}
