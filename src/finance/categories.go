package finance

import (
	"cmp"
	"slices"

	"financezenn-server/src/models"
)

type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// TotalsByCategory sums transactions of one type per category, largest first.
// Ties are broken by category name so the output is deterministic.
func TotalsByCategory(txs []models.Transaction, typ models.TransactionType) []CategoryAmount {
	sums := make(map[string]int64)
	for _, t := range txs {
		if t.Type == typ {
			sums[t.Category] += t.Amount
		}
	}
	out := make([]CategoryAmount, 0, len(sums))
	for c, a := range sums {
		out = append(out, CategoryAmount{Category: c, Amount: a})
	}
	slices.SortFunc(out, func(a, b CategoryAmount) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// ExpensesByCategory is TotalsByCategory over expenses.
func ExpensesByCategory(txs []models.Transaction) []CategoryAmount {
	return TotalsByCategory(txs, models.TransactionExpense)
}
