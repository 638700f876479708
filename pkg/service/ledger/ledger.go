// Package ledger provides the ledger service. Creating, editing or deleting
// an entry applies the matching signed delta to the account balance through
// the account service, inside the same unit of work, and enforces the
// no-overdraft rule for outgoing movements.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeboard/lifeboard/pkg/domain"
	"github.com/lifeboard/lifeboard/pkg/domain/ledger"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/repository"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
)

// Service creates and maintains ledger entries and keeps the account balance
// in step with them.
type Service struct {
	uow      repository.UnitOfWork
	accounts *accountsvc.Service
	logger   *slog.Logger
}

// New creates a Service.
func New(uow repository.UnitOfWork, accounts *accountsvc.Service, logger *slog.Logger) *Service {
	return &Service{uow: uow, accounts: accounts, logger: logger}
}

// Get retrieves a ledger entry by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (e *ledger.Entry, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Ledger()
		if err != nil {
			return err
		}
		e, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		e = nil
	}
	return
}

// List returns a page of ledger entries ordered by insertion.
func (s *Service) List(ctx context.Context, page, size int) (*dto.Page[*dto.EntryRead], error) {
	page, size = dto.Clamp(page, size)
	var result *dto.Page[*dto.EntryRead]
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Ledger()
		if err != nil {
			return err
		}
		entries, total, err := repo.List(ctx, size, (page-1)*size)
		if err != nil {
			return err
		}
		items := make([]*dto.EntryRead, 0, len(entries))
		for _, e := range entries {
			items = append(items, ToRead(e))
		}
		result = &dto.Page[*dto.EntryRead]{Items: items, Page: page, Size: size, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListByAccount returns all of an account's entries in insertion order.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) (entries []*ledger.Entry, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Ledger()
		if err != nil {
			return err
		}
		entries, err = repo.ListByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		entries = nil
	}
	return
}

// Create records an entry and applies its effect to the account balance as
// one atomic transaction.
func (s *Service) Create(ctx context.Context, create dto.EntryCreate) (e *ledger.Entry, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		e, err = s.CreateTx(ctx, uow, create)
		return err
	})
	if err != nil {
		e = nil
	}
	return
}

// CreateTx records an entry within an existing unit of work. An outgoing
// entry that exceeds the account balance fails with ErrInsufficientFunds and
// mutates nothing.
func (s *Service) CreateTx(ctx context.Context, uow repository.UnitOfWork, create dto.EntryCreate) (*ledger.Entry, error) {
	e, err := ledger.New(create.AccountID, create.GoalID, create.Description, create.Amount, create.Kind, create.Category)
	if err != nil {
		return nil, err
	}
	acct, err := s.accounts.GetTx(ctx, uow, create.AccountID)
	if err != nil {
		return nil, err
	}
	if e.Kind.IsOutgoing() && acct.Balance.LessThan(e.Amount) {
		return nil, domain.ErrInsufficientFunds
	}
	_, err = s.accounts.UpdateTx(ctx, uow, acct.ID, dto.AccountUpdate{
		Balance:       acct.Balance.Add(e.Signed()),
		MonthlyIncome: acct.MonthlyIncome,
	})
	if err != nil {
		return nil, err
	}
	repo, err := uow.Ledger()
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("ledger entry created",
		"entryID", e.ID, "accountID", e.AccountID, "kind", e.Kind, "amount", e.Amount)
	return e, nil
}

// Update rewrites an entry and applies the balance difference between the
// new and old signed amounts. The operation fails with ErrInsufficientFunds
// if the recomputed balance would go negative, leaving entry and balance
// unchanged.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update dto.EntryUpdate) (e *ledger.Entry, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Ledger()
		if err != nil {
			return err
		}
		e, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := ledger.ValidateDescription(update.Description); err != nil {
			return err
		}
		if !update.Amount.IsPositive() {
			return domain.ErrValidation
		}
		if !update.Kind.IsValid() || !update.Category.IsValid() {
			return domain.ErrValidation
		}

		acct, err := s.accounts.GetTx(ctx, uow, e.AccountID)
		if err != nil {
			return err
		}
		delta := update.Kind.Signed(update.Amount).Sub(e.Signed())
		newBalance := acct.Balance.Add(delta)
		if newBalance.IsNegative() {
			return domain.ErrInsufficientFunds
		}
		_, err = s.accounts.UpdateTx(ctx, uow, acct.ID, dto.AccountUpdate{
			Balance:       newBalance,
			MonthlyIncome: acct.MonthlyIncome,
		})
		if err != nil {
			return err
		}

		e.Description = update.Description
		e.Amount = update.Amount
		e.Kind = update.Kind
		e.Category = update.Category
		return repo.Update(ctx, e)
	})
	if err != nil {
		e = nil
	}
	return
}

// Delete reverses the entry's original effect on the balance before removing
// the row, so the balance reflects the entry's absence.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Ledger()
		if err != nil {
			return err
		}
		e, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		acct, err := s.accounts.GetTx(ctx, uow, e.AccountID)
		if err != nil {
			return err
		}
		newBalance := acct.Balance.Sub(e.Signed())
		if newBalance.IsNegative() {
			return domain.ErrInsufficientFunds
		}
		_, err = s.accounts.UpdateTx(ctx, uow, acct.ID, dto.AccountUpdate{
			Balance:       newBalance,
			MonthlyIncome: acct.MonthlyIncome,
		})
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

// ListByGoalTx returns the entries linked to a goal, within an existing unit
// of work.
func (s *Service) ListByGoalTx(ctx context.Context, uow repository.UnitOfWork, goalID uuid.UUID) ([]*ledger.Entry, error) {
	repo, err := uow.Ledger()
	if err != nil {
		return nil, err
	}
	return repo.ListByGoal(ctx, goalID)
}

// BulkUpdateTx persists edited entries within an existing unit of work. It
// does not touch the balance: the goal-level caller already reconciled it.
func (s *Service) BulkUpdateTx(ctx context.Context, uow repository.UnitOfWork, entries []*ledger.Entry) error {
	repo, err := uow.Ledger()
	if err != nil {
		return err
	}
	return repo.UpdateAll(ctx, entries)
}

// BulkDeleteTx removes entries within an existing unit of work. It does not
// touch the balance: the goal-level caller already reconciled it.
func (s *Service) BulkDeleteTx(ctx context.Context, uow repository.UnitOfWork, entries []*ledger.Entry) error {
	repo, err := uow.Ledger()
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return repo.DeleteAll(ctx, ids)
}

// ToRead maps an entry to its read model.
func ToRead(e *ledger.Entry) *dto.EntryRead {
	return &dto.EntryRead{
		ID:          e.ID,
		AccountID:   e.AccountID,
		GoalID:      e.GoalID,
		Description: e.Description,
		Amount:      e.Amount,
		Kind:        string(e.Kind),
		Category:    string(e.Category),
		CreatedAt:   e.CreatedAt,
	}
}
