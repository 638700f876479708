// Package repository implements the data access contracts on gorm/postgres.
// Persistence models are kept separate from the domain entities; mapping
// happens at the repository boundary.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a user record in the database.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:150"`
	Email     string    `gorm:"uniqueIndex;not null;size:150"`
	Password  string    `gorm:"not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account represents an account record in the database. Goals and ledger
// entries are removed with the account.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Balance       decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	MonthlyIncome decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Goals   []Goal        `gorm:"constraint:OnDelete:CASCADE"`
	Entries []LedgerEntry `gorm:"constraint:OnDelete:CASCADE"`
}

// Goal represents a goal record in the database. Status is stored but always
// recomputed on write; it is never accepted from a caller.
type Goal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name            string          `gorm:"not null;size:150"`
	TargetAmount    decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	AllocatedAmount decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Deadline        time.Time       `gorm:"type:date;not null"`
	Status          string          `gorm:"not null;size:15"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LedgerEntry represents a ledger entry record in the database. GoalID is the
// nullable link to the goal that produced the entry.
type LedgerEntry struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	GoalID      *uuid.UUID      `gorm:"type:uuid;index"`
	Description string          `gorm:"not null;size:150"`
	Amount      decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Kind        string          `gorm:"not null;size:15"`
	Category    string          `gorm:"not null;size:50"`
	CreatedAt   time.Time
}
