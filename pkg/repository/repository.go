// Package repository defines the data access contracts and the transactional
// unit of work the services run inside.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeboard/lifeboard/pkg/domain/account"
	"github.com/lifeboard/lifeboard/pkg/domain/goal"
	"github.com/lifeboard/lifeboard/pkg/domain/ledger"
	"github.com/lifeboard/lifeboard/pkg/domain/user"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*account.Account, error)
	List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error)
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository defines data access for goals.
type GoalRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*goal.Goal, error)
	List(ctx context.Context, limit, offset int) ([]*goal.Goal, int64, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*goal.Goal, error)
	Create(ctx context.Context, g *goal.Goal) error
	Update(ctx context.Context, g *goal.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}

// LedgerRepository defines data access for ledger entries. List results are
// ordered by insertion (ascending id).
type LedgerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*ledger.Entry, error)
	List(ctx context.Context, limit, offset int) ([]*ledger.Entry, int64, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Entry, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]*ledger.Entry, error)
	Create(ctx context.Context, e *ledger.Entry) error
	Update(ctx context.Context, e *ledger.Entry) error
	UpdateAll(ctx context.Context, entries []*ledger.Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, ids []uuid.UUID) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}

// UserRepository defines data access for users.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
