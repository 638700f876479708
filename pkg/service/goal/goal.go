// Package goal provides the goal service, the orchestrator of the
// balance-goal-ledger consistency rules. Every operation runs in one unit of
// work and touches the account and the ledger only through the other two
// services, never their rows directly.
package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/domain"
	"github.com/lifeboard/lifeboard/pkg/domain/goal"
	"github.com/lifeboard/lifeboard/pkg/domain/ledger"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/repository"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
	ledgersvc "github.com/lifeboard/lifeboard/pkg/service/ledger"
)

// Service orchestrates goal lifecycle operations against the account balance
// and the ledger.
type Service struct {
	uow      repository.UnitOfWork
	accounts *accountsvc.Service
	entries  *ledgersvc.Service
	logger   *slog.Logger
}

// New creates a Service.
func New(
	uow repository.UnitOfWork,
	accounts *accountsvc.Service,
	entries *ledgersvc.Service,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, accounts: accounts, entries: entries, logger: logger}
}

// Get retrieves a goal by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (g *goal.Goal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		g, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		g = nil
	}
	return
}

// List returns a page of goals ordered by insertion.
func (s *Service) List(ctx context.Context, page, size int) (*dto.Page[*dto.GoalRead], error) {
	page, size = dto.Clamp(page, size)
	var result *dto.Page[*dto.GoalRead]
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		goals, total, err := repo.List(ctx, size, (page-1)*size)
		if err != nil {
			return err
		}
		items := make([]*dto.GoalRead, 0, len(goals))
		for _, g := range goals {
			items = append(items, ToRead(g))
		}
		result = &dto.Page[*dto.GoalRead]{Items: items, Page: page, Size: size, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Create reserves the initial allocation from the account balance and
// persists the goal. No ledger entry is emitted for the initial reservation;
// only funding and withdrawing do that.
func (s *Service) Create(ctx context.Context, create dto.GoalCreate) (g *goal.Goal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acct, err := s.accounts.GetTx(ctx, uow, create.AccountID)
		if err != nil {
			return err
		}
		if acct.Balance.LessThan(create.InitialAllocated) {
			return domain.ErrInsufficientFunds
		}
		_, err = s.accounts.UpdateTx(ctx, uow, acct.ID, dto.AccountUpdate{
			Balance:       acct.Balance.Sub(create.InitialAllocated),
			MonthlyIncome: acct.MonthlyIncome,
		})
		if err != nil {
			return err
		}
		g, err = goal.New(create.AccountID, create.Name, create.TargetAmount, create.InitialAllocated, create.Deadline)
		if err != nil {
			return err
		}
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		return repo.Create(ctx, g)
	})
	if err != nil {
		g = nil
		return
	}
	s.logger.Info("goal created",
		"goalID", g.ID, "accountID", g.AccountID, "allocated", g.AllocatedAmount, "status", g.Status)
	return
}

// Fund moves amount from the account's free balance into the goal's
// allocation and records an ALLOCATE ledger entry. The goal's bookkeeping is
// persisted before the ledger/balance write so a failure in the balance step
// leaves the goal internally consistent for retry.
func (s *Service) Fund(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) (g *goal.Goal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if !amount.IsPositive() {
			return domain.ErrValidation
		}
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		g, err = repo.Get(ctx, goalID)
		if err != nil {
			return err
		}
		acct, err := s.accounts.GetTx(ctx, uow, g.AccountID)
		if err != nil {
			return err
		}
		if acct.Balance.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		g.AllocatedAmount = g.AllocatedAmount.Add(amount)
		g.Recompute()
		if err := repo.Update(ctx, g); err != nil {
			return err
		}

		// The entry creation debits the balance; net effect is a single
		// debit of amount.
		_, err = s.entries.CreateTx(ctx, uow, dto.EntryCreate{
			AccountID:   g.AccountID,
			GoalID:      &g.ID,
			Description: goal.AllocationDescription(g.Name),
			Amount:      amount,
			Kind:        ledger.KindAllocate,
			Category:    ledger.CategoryInvestment,
		})
		return err
	})
	if err != nil {
		g = nil
		return
	}
	s.logger.Info("goal funded", "goalID", g.ID, "amount", amount, "status", g.Status)
	return
}

// Withdraw moves amount out of the goal's allocation back into the account's
// free balance and records a DEALLOCATE ledger entry.
func (s *Service) Withdraw(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) (g *goal.Goal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if !amount.IsPositive() {
			return domain.ErrValidation
		}
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		g, err = repo.Get(ctx, goalID)
		if err != nil {
			return err
		}
		if g.AllocatedAmount.LessThan(amount) {
			return domain.ErrInsufficientFunds
		}

		g.AllocatedAmount = g.AllocatedAmount.Sub(amount)
		g.Recompute()
		if err := repo.Update(ctx, g); err != nil {
			return err
		}

		_, err = s.entries.CreateTx(ctx, uow, dto.EntryCreate{
			AccountID:   g.AccountID,
			GoalID:      &g.ID,
			Description: goal.WithdrawalDescription(g.Name),
			Amount:      amount,
			Kind:        ledger.KindDeallocate,
			Category:    ledger.CategoryInvestment,
		})
		return err
	})
	if err != nil {
		g = nil
		return
	}
	s.logger.Info("goal withdrawn", "goalID", g.ID, "amount", amount, "status", g.Status)
	return
}

// Update applies the caller-mutable fields (name, target, deadline),
// recomputes the status, and rewrites the synthesized descriptions of the
// goal's ledger entries to the new name.
func (s *Service) Update(ctx context.Context, goalID uuid.UUID, update dto.GoalUpdate) (g *goal.Goal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		g, err = repo.Get(ctx, goalID)
		if err != nil {
			return err
		}
		if err := goal.ValidateName(update.Name); err != nil {
			return err
		}
		if !update.TargetAmount.IsPositive() {
			return domain.ErrValidation
		}

		oldName := g.Name
		g.Name = update.Name
		g.TargetAmount = update.TargetAmount
		g.Deadline = update.Deadline
		g.Recompute()
		if err := repo.Update(ctx, g); err != nil {
			return err
		}

		if oldName == g.Name {
			return nil
		}
		entries, err := s.entries.ListByGoalTx(ctx, uow, g.ID)
		if err != nil {
			return err
		}
		changed := entries[:0]
		for _, e := range entries {
			switch e.Description {
			case goal.AllocationDescription(oldName):
				e.Description = goal.AllocationDescription(g.Name)
			case goal.WithdrawalDescription(oldName):
				e.Description = goal.WithdrawalDescription(g.Name)
			default:
				continue
			}
			changed = append(changed, e)
		}
		return s.entries.BulkUpdateTx(ctx, uow, changed)
	})
	if err != nil {
		g = nil
	}
	return
}

// Delete releases the goal's full allocation back to the account balance,
// removes the goal's ledger entries, and deletes the goal. The allocated
// amount is trusted as the source of truth for the refund.
func (s *Service) Delete(ctx context.Context, goalID uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Goals()
		if err != nil {
			return err
		}
		g, err := repo.Get(ctx, goalID)
		if err != nil {
			return err
		}
		acct, err := s.accounts.GetTx(ctx, uow, g.AccountID)
		if err != nil {
			return err
		}
		_, err = s.accounts.UpdateTx(ctx, uow, acct.ID, dto.AccountUpdate{
			Balance:       acct.Balance.Add(g.AllocatedAmount),
			MonthlyIncome: acct.MonthlyIncome,
		})
		if err != nil {
			return err
		}
		entries, err := s.entries.ListByGoalTx(ctx, uow, g.ID)
		if err != nil {
			return err
		}
		if err := s.entries.BulkDeleteTx(ctx, uow, entries); err != nil {
			return err
		}
		if err := repo.Delete(ctx, g.ID); err != nil {
			return err
		}
		s.logger.Info("goal deleted", "goalID", g.ID, "refunded", g.AllocatedAmount)
		return nil
	})
}

// ToRead maps a goal to its read model.
func ToRead(g *goal.Goal) *dto.GoalRead {
	return &dto.GoalRead{
		ID:              g.ID,
		AccountID:       g.AccountID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		AllocatedAmount: g.AllocatedAmount,
		Deadline:        g.Deadline,
		Status:          string(g.Status),
		CreatedAt:       g.CreatedAt,
	}
}
