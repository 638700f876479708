package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lifeboard/lifeboard/pkg/repository"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories returned inside Do are bound to the transaction
// session, so every write within one Do commits or rolls back as a unit.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction boundary, providing a UoW whose repositories
// share the transaction session.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		// Already inside a transaction; reuse the scope.
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Accounts returns an account repository bound to the current session.
func (u *UoW) Accounts() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

// Goals returns a goal repository bound to the current session.
func (u *UoW) Goals() (repository.GoalRepository, error) {
	return NewGoalRepository(u.session()), nil
}

// Ledger returns a ledger repository bound to the current session.
func (u *UoW) Ledger() (repository.LedgerRepository, error) {
	return NewLedgerRepository(u.session()), nil
}

// Users returns a user repository bound to the current session.
func (u *UoW) Users() (repository.UserRepository, error) {
	return NewUserRepository(u.session()), nil
}
