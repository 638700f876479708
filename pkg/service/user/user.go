// Package user provides user registration and maintenance. Registration
// opens the user's single zero-balance account in the same transaction;
// deleting a user removes the account with it.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/domain/user"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/repository"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
)

// Service provides business logic for user operations.
type Service struct {
	uow      repository.UnitOfWork
	accounts *accountsvc.Service
	logger   *slog.Logger
}

// New creates a Service.
func New(uow repository.UnitOfWork, accounts *accountsvc.Service, logger *slog.Logger) *Service {
	return &Service{uow: uow, accounts: accounts, logger: logger}
}

// Register creates a user and their account in one transaction.
func (s *Service) Register(ctx context.Context, name, email, password string) (u *user.User, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Users()
		if err != nil {
			return err
		}
		u, err = user.New(name, email, password)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, u); err != nil {
			return err
		}
		_, err = s.accounts.CreateTx(ctx, uow, dto.AccountCreate{
			UserID:        u.ID,
			Balance:       decimal.Zero,
			MonthlyIncome: decimal.Zero,
		})
		return err
	})
	if err != nil {
		u = nil
		return
	}
	s.logger.Info("user registered", "userID", u.ID, "email", u.Email)
	return
}

// Get retrieves a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (u *user.User, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Users()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		u = nil
	}
	return
}

// Update renames a user. Email and password changes go through here as well.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name, email string) (u *user.User, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Users()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		u.Name = name
		u.Email = email
		return repo.Update(ctx, u)
	})
	if err != nil {
		u = nil
	}
	return
}

// Delete removes the user and their account (with its goals and entries).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.Users()
		if err != nil {
			return err
		}
		if _, err := users.Get(ctx, id); err != nil {
			return err
		}
		accounts, err := uow.Accounts()
		if err != nil {
			return err
		}
		acct, err := accounts.GetByUser(ctx, id)
		if err == nil {
			if err := s.accounts.DeleteTx(ctx, uow, acct.ID); err != nil {
				return err
			}
		}
		return users.Delete(ctx, id)
	})
}

// ToRead maps a user to its read model.
func ToRead(u *user.User) *dto.UserRead {
	return &dto.UserRead{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
