// Package ledger defines the LedgerEntry aggregate: an immutable-once-created
// record of a single balance movement. Direction is carried by Kind, never by
// the sign of Amount.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/domain"
)

// Kind classifies a balance movement.
type Kind string

// Entry kinds. Inflow/Outflow are manual movements; Allocate/Deallocate move
// funds between the free balance and a goal's reservation.
const (
	KindInflow     Kind = "INFLOW"
	KindOutflow    Kind = "OUTFLOW"
	KindAllocate   Kind = "ALLOCATE"
	KindDeallocate Kind = "DEALLOCATE"
)

// IsValid reports whether k is one of the four entry kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindInflow, KindOutflow, KindAllocate, KindDeallocate:
		return true
	}
	return false
}

// IsOutgoing reports whether the kind debits the account balance.
func (k Kind) IsOutgoing() bool {
	return k == KindOutflow || k == KindAllocate
}

// Signed returns the amount with the sign the kind applies to the balance.
func (k Kind) Signed(amount decimal.Decimal) decimal.Decimal {
	if k.IsOutgoing() {
		return amount.Neg()
	}
	return amount
}

// Category is the closed enumeration of entry categories.
type Category string

// Entry categories.
const (
	CategorySalary     Category = "SALARY"
	CategoryHousing    Category = "HOUSING"
	CategoryFood       Category = "FOOD"
	CategoryTransport  Category = "TRANSPORT"
	CategoryHealth     Category = "HEALTH"
	CategoryEducation  Category = "EDUCATION"
	CategoryLeisure    Category = "LEISURE"
	CategoryInvestment Category = "INVESTMENT"
	CategoryOther      Category = "OTHER"
)

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategorySalary, CategoryHousing, CategoryFood, CategoryTransport,
		CategoryHealth, CategoryEducation, CategoryLeisure, CategoryInvestment,
		CategoryOther:
		return true
	}
	return false
}

// Entry records one balance movement on an account. GoalID is set when the
// entry was produced by funding or withdrawing from a goal.
type Entry struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	GoalID      *uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	Category    Category
	CreatedAt   time.Time
}

// New creates an Entry, validating the money-relevant invariants. The
// timestamp is stamped at creation and is immutable afterwards.
func New(
	accountID uuid.UUID,
	goalID *uuid.UUID,
	description string,
	amount decimal.Decimal,
	kind Kind,
	category Category,
) (*Entry, error) {
	if accountID == uuid.Nil {
		return nil, fmt.Errorf("%w: account is required", domain.ErrValidation)
	}
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown entry kind %q", domain.ErrValidation, kind)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, category)
	}
	return &Entry{
		ID:          uuid.New(),
		AccountID:   accountID,
		GoalID:      goalID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		CreatedAt:   time.Now(),
	}, nil
}

// Signed returns the entry's effect on the account balance.
func (e *Entry) Signed() decimal.Decimal {
	return e.Kind.Signed(e.Amount)
}

// ValidateDescription enforces the 3-150 character bound on descriptions.
func ValidateDescription(description string) error {
	if n := len([]rune(description)); n < 3 || n > 150 {
		return fmt.Errorf("%w: description must be 3-150 characters", domain.ErrValidation)
	}
	return nil
}
