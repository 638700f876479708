package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCreate is the input for creating a goal. InitialAllocated is reserved
// from the account's balance at creation.
type GoalCreate struct {
	AccountID        uuid.UUID
	Name             string
	TargetAmount     decimal.Decimal
	InitialAllocated decimal.Decimal
	Deadline         time.Time
}

// GoalUpdate carries the caller-mutable fields of a goal. The allocated
// amount only moves through Fund and Withdraw.
type GoalUpdate struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

// GoalRead is the read model of a goal.
type GoalRead struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	Deadline        time.Time       `json:"deadline"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
