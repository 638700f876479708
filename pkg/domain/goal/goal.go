// Package goal defines the Goal aggregate: a named reservation of funds with
// a target amount and deadline. Status is derived from the amounts, never set
// by callers.
package goal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/domain"
)

// Status is the derived progress state of a goal.
type Status string

// Goal states. There is no terminal state: a completed goal re-enters
// IN_PROGRESS when its target is raised or funds are withdrawn.
const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// StatusFor derives the status from the allocated and target amounts.
func StatusFor(allocated, target decimal.Decimal) Status {
	if allocated.GreaterThanOrEqual(target) {
		return StatusCompleted
	}
	return StatusInProgress
}

// Goal reserves a portion of an account's balance towards a target.
type Goal struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Name            string
	TargetAmount    decimal.Decimal
	AllocatedAmount decimal.Decimal
	Deadline        time.Time
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New creates a Goal, validating name bounds and amount invariants. The
// status is derived immediately from the initial allocation.
func New(
	accountID uuid.UUID,
	name string,
	target, allocated decimal.Decimal,
	deadline time.Time,
) (*Goal, error) {
	if accountID == uuid.Nil {
		return nil, fmt.Errorf("%w: account is required", domain.ErrValidation)
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if !target.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", domain.ErrValidation)
	}
	if allocated.IsNegative() {
		return nil, fmt.Errorf("%w: allocated amount must not be negative", domain.ErrValidation)
	}
	g := &Goal{
		ID:              uuid.New(),
		AccountID:       accountID,
		Name:            name,
		TargetAmount:    target,
		AllocatedAmount: allocated,
		Deadline:        deadline,
		CreatedAt:       time.Now(),
	}
	g.Recompute()
	return g, nil
}

// Recompute refreshes the derived status. It must run after every mutation of
// AllocatedAmount or TargetAmount.
func (g *Goal) Recompute() {
	g.Status = StatusFor(g.AllocatedAmount, g.TargetAmount)
}

// ValidateName enforces the 3-150 character bound on goal names.
func ValidateName(name string) error {
	if n := len([]rune(name)); n < 3 || n > 150 {
		return fmt.Errorf("%w: name must be 3-150 characters", domain.ErrValidation)
	}
	return nil
}

// AllocationDescription synthesizes the ledger description for funding the
// named goal.
func AllocationDescription(name string) string {
	return "Allocation to goal: " + name
}

// WithdrawalDescription synthesizes the ledger description for withdrawing
// from the named goal.
func WithdrawalDescription(name string) string {
	return "Withdrawal from goal: " + name
}
