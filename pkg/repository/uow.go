package repository

import "context"

// UnitOfWork is the explicit transaction scope every money-mutating operation
// runs inside. Repositories obtained from a UnitOfWork share its database
// session, so all writes within one Do either commit together or not at all.
//
// Each public service operation opens exactly one Do; orchestrated
// sub-operations receive the UnitOfWork value instead of opening their own.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back and nothing is applied.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Repository accessors bound to the current transaction/session.
	Accounts() (AccountRepository, error)
	Goals() (GoalRepository, error)
	Ledger() (LedgerRepository, error)
	Users() (UserRepository, error)
}
