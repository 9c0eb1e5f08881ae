package models

import "time"

type Goal struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"userId"`
	Name          string     `json:"name"`
	TargetAmount  int64      `json:"targetAmount"`
	CurrentAmount int64      `json:"currentAmount"`
	Category      *string    `json:"category"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type GoalInput struct {
	Name          string     `json:"name"`
	TargetAmount  int64      `json:"targetAmount"`
	CurrentAmount int64      `json:"currentAmount"`
	Category      *string    `json:"category"`
	Deadline      *time.Time `json:"deadline"`
}

type UpdateGoalRequest struct {
	Name          *string    `json:"name"`
	TargetAmount  *int64     `json:"targetAmount"`
	CurrentAmount *int64     `json:"currentAmount"`
	Category      *string    `json:"category"`
	Deadline      *time.Time `json:"deadline"`
}
