// Package account provides the account service: a deliberately dumb
// accessor/mutator of the stored balance and monthly income. It performs no
// subtraction logic; sufficiency checks live in its callers so overdraft
// rules exist in exactly one place.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeboard/lifeboard/pkg/domain"
	"github.com/lifeboard/lifeboard/pkg/domain/account"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/repository"
)

// Service is the only component permitted to write the account balance field.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Get retrieves an account by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (a *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err = s.GetTx(ctx, uow, id)
		return err
	})
	if err != nil {
		a = nil
	}
	return
}

// GetTx retrieves an account within an existing unit of work.
func (s *Service) GetTx(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) (*account.Account, error) {
	repo, err := uow.Accounts()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

// List returns a page of accounts ordered by insertion.
func (s *Service) List(ctx context.Context, page, size int) (*dto.Page[*dto.AccountRead], error) {
	page, size = dto.Clamp(page, size)
	var result *dto.Page[*dto.AccountRead]
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Accounts()
		if err != nil {
			return err
		}
		accounts, total, err := repo.List(ctx, size, (page-1)*size)
		if err != nil {
			return err
		}
		items := make([]*dto.AccountRead, 0, len(accounts))
		for _, a := range accounts {
			items = append(items, ToRead(a))
		}
		result = &dto.Page[*dto.AccountRead]{Items: items, Page: page, Size: size, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Create creates an account for a user in a transaction.
func (s *Service) Create(ctx context.Context, create dto.AccountCreate) (a *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err = s.CreateTx(ctx, uow, create)
		return err
	})
	if err != nil {
		a = nil
	}
	return
}

// CreateTx creates an account within an existing unit of work. Used by user
// registration, which opens the account alongside the user row.
func (s *Service) CreateTx(ctx context.Context, uow repository.UnitOfWork, create dto.AccountCreate) (*account.Account, error) {
	repo, err := uow.Accounts()
	if err != nil {
		return nil, err
	}
	a, err := account.New(create.UserID, create.Balance, create.MonthlyIncome)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info("account created", "accountID", a.ID, "userID", a.UserID)
	return a, nil
}

// Update replaces the full mutable projection of the account, balance and
// monthly income, atomically. A negative balance is never accepted.
func (s *Service) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) (a *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err = s.UpdateTx(ctx, uow, id, update)
		return err
	})
	if err != nil {
		a = nil
	}
	return
}

// UpdateTx replaces the mutable projection within an existing unit of work.
// Callers are responsible for pre-validating sufficiency; this method only
// refuses negative values.
func (s *Service) UpdateTx(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID, update dto.AccountUpdate) (*account.Account, error) {
	if update.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance must not be negative", domain.ErrValidation)
	}
	if update.MonthlyIncome.IsNegative() {
		return nil, fmt.Errorf("%w: monthly income must not be negative", domain.ErrValidation)
	}
	repo, err := uow.Accounts()
	if err != nil {
		return nil, err
	}
	a, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Balance = update.Balance
	a.MonthlyIncome = update.MonthlyIncome
	if err := repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the account along with its goals and ledger entries
// (composition: owned rows do not outlive the account).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return s.DeleteTx(ctx, uow, id)
	})
}

// DeleteTx removes the account within an existing unit of work.
func (s *Service) DeleteTx(ctx context.Context, uow repository.UnitOfWork, id uuid.UUID) error {
	accounts, err := uow.Accounts()
	if err != nil {
		return err
	}
	if _, err := accounts.Get(ctx, id); err != nil {
		return err
	}
	ledgerRepo, err := uow.Ledger()
	if err != nil {
		return err
	}
	if err := ledgerRepo.DeleteByAccount(ctx, id); err != nil {
		return err
	}
	goals, err := uow.Goals()
	if err != nil {
		return err
	}
	if err := goals.DeleteByAccount(ctx, id); err != nil {
		return err
	}
	if err := accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("account deleted", "accountID", id)
	return nil
}

// ToRead maps an account to its read projection.
func ToRead(a *account.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:            a.ID,
		UserID:        a.UserID,
		Balance:       a.Balance,
		MonthlyIncome: a.MonthlyIncome,
		CreatedAt:     a.CreatedAt,
	}
}
