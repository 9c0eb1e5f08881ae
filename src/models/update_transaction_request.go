package models

import "time"

// UpdateTransactionRequest carries a partial update; nil fields are left untouched.
type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *int64           `json:"amount"`
	Type        *TransactionType `json:"type"`
	Category    *string          `json:"category"`
	Date        *time.Time       `json:"date"`
}
