// Package account defines the Account aggregate: a single balance-holding
// entity per user, referencing the user's monthly income.
//
// Invariants:
//   - An account must always have a valid owner (UserID).
//   - Balance and MonthlyIncome are exact decimals and never negative at rest.
package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/domain"
)

// Account represents a user's financial position: the free balance plus the
// informational monthly income. Goals and ledger entries hang off it.
type Account struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Balance       decimal.Decimal
	MonthlyIncome decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New creates an Account for the given owner, validating that neither money
// field is negative.
func New(userID uuid.UUID, balance, monthlyIncome decimal.Decimal) (*Account, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", domain.ErrValidation)
	}
	if monthlyIncome.IsNegative() {
		return nil, fmt.Errorf("%w: monthly income must not be negative", domain.ErrValidation)
	}
	return &Account{
		ID:            uuid.New(),
		UserID:        userID,
		Balance:       balance,
		MonthlyIncome: monthlyIncome,
		CreatedAt:     time.Now(),
	}, nil
}

// NewFromData hydrates an Account from stored data, bypassing invariants.
// Only repositories and test fixtures should use it.
func NewFromData(
	id, userID uuid.UUID,
	balance, monthlyIncome decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		ID:            id,
		UserID:        userID,
		Balance:       balance,
		MonthlyIncome: monthlyIncome,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
