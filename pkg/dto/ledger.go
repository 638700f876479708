package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/domain/ledger"
)

// EntryCreate is the input for recording a ledger entry. GoalID is only set
// by the goal service for allocation/deallocation entries.
type EntryCreate struct {
	AccountID   uuid.UUID
	GoalID      *uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        ledger.Kind
	Category    ledger.Category
}

// EntryUpdate carries the mutable fields of a ledger entry.
type EntryUpdate struct {
	Description string
	Amount      decimal.Decimal
	Kind        ledger.Kind
	Category    ledger.Category
}

// EntryRead is the read model of a ledger entry.
type EntryRead struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	GoalID      *uuid.UUID      `json:"goal_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}
