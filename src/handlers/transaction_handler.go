package handlers

import (
	"net/http"

	"financezenn-server/src/store"
	"financezenn-server/src/util"
)

func GetTransactions(s store.TransactionStore) http.HandlerFunc {
	return listHandler(s.ListTransactions, "transactions")
}

func CreateTransaction(s store.TransactionStore, c SummaryCache) http.HandlerFunc {
	return createHandler(util.ValidateTransactionInput, s.CreateTransaction, c, "transaction")
}

func UpdateTransaction(s store.TransactionStore, c SummaryCache) http.HandlerFunc {
	return updateHandler(util.ValidateUpdateTransactionRequest, s.UpdateTransaction, c, "transaction")
}

func DeleteTransaction(s store.TransactionStore, c SummaryCache) http.HandlerFunc {
	return deleteHandler(s.DeleteTransaction, c, "transaction")
}
