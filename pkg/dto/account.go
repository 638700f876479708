// Package dto holds the data transfer shapes exchanged between the webapi,
// services and repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreate is the input for creating an account.
type AccountCreate struct {
	UserID        uuid.UUID
	Balance       decimal.Decimal
	MonthlyIncome decimal.Decimal
}

// AccountUpdate replaces the full mutable projection of an account: balance
// and monthly income, atomically.
type AccountUpdate struct {
	Balance       decimal.Decimal
	MonthlyIncome decimal.Decimal
}

// AccountRead is the read model of an account.
type AccountRead struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Balance       decimal.Decimal `json:"balance"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	CreatedAt     time.Time       `json:"created_at"`
}
