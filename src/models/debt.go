package models

import "time"

type Debt struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	Name         string     `json:"name"`
	Amount       int64      `json:"amount"`       // cents outstanding
	InterestRate int        `json:"interestRate"` // basis points
	MinPayment   int64      `json:"minPayment"`
	DueDate      *time.Time `json:"dueDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type DebtInput struct {
	Name         string     `json:"name"`
	Amount       int64      `json:"amount"`
	InterestRate int        `json:"interestRate"`
	MinPayment   int64      `json:"minPayment"`
	DueDate      *time.Time `json:"dueDate"`
}

type UpdateDebtRequest struct {
	Name         *string    `json:"name"`
	Amount       *int64     `json:"amount"`
	InterestRate *int       `json:"interestRate"`
	MinPayment   *int64     `json:"minPayment"`
	DueDate      *time.Time `json:"dueDate"`
}
