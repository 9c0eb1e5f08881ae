package models

import "time"

type Investment struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	Name         string    `json:"name"`
	Amount       int64     `json:"amount"` // cents invested
	Type         string    `json:"type"`
	ReturnRate   int       `json:"returnRate"` // basis points
	CurrentValue int64     `json:"currentValue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Gain is the unrealized gain in cents. It is never stored.
func (i Investment) Gain() int64 {
	return i.CurrentValue - i.Amount
}

type InvestmentInput struct {
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	Type         string `json:"type"`
	ReturnRate   int    `json:"returnRate"`
	CurrentValue int64  `json:"currentValue"`
}

type UpdateInvestmentRequest struct {
	Name         *string `json:"name"`
	Amount       *int64  `json:"amount"`
	Type         *string `json:"type"`
	ReturnRate   *int    `json:"returnRate"`
	CurrentValue *int64  `json:"currentValue"`
}
