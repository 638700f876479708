// Package account exposes account endpoints: the read side plus the full
// mutable projection update (balance and monthly income).
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/config"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/middleware"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
	ledgersvc "github.com/lifeboard/lifeboard/pkg/service/ledger"
	"github.com/lifeboard/lifeboard/webapi/common"
)

// CreateRequest is the request body for POST /account.
type CreateRequest struct {
	UserID        uuid.UUID       `json:"user_id" validate:"required"`
	Balance       decimal.Decimal `json:"balance"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
}

// UpdateRequest replaces the account's mutable projection.
type UpdateRequest struct {
	Balance       decimal.Decimal `json:"balance"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
}

// Routes registers the account endpoints.
func Routes(app *fiber.App, svc *accountsvc.Service, entries *ledgersvc.Service, jwtCfg *config.Jwt) {
	protected := middleware.JwtProtected(jwtCfg)
	app.Get("/account", protected, List(svc))
	app.Get("/account/:id", protected, Get(svc))
	app.Post("/account", protected, Create(svc))
	app.Put("/account/:id", protected, Update(svc))
	app.Delete("/account/:id", protected, Delete(svc))
	app.Get("/account/:id/ledger", protected, ListLedger(entries))
}

// List returns a page of accounts.
func List(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		size := c.QueryInt("size", 20)
		result, err := svc.List(c.Context(), page, size)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", result)
	}
}

// Get retrieves an account by id.
func Get(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account id", err, fiber.StatusBadRequest)
		}
		a, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", accountsvc.ToRead(a))
	}
}

// Create opens an account for a user.
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Create(c.Context(), dto.AccountCreate{
			UserID:        input.UserID,
			Balance:       input.Balance,
			MonthlyIncome: input.MonthlyIncome,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", accountsvc.ToRead(a))
	}
}

// Update replaces the balance and monthly income atomically.
func Update(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Update(c.Context(), id, dto.AccountUpdate{
			Balance:       input.Balance,
			MonthlyIncome: input.MonthlyIncome,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", accountsvc.ToRead(a))
	}
}

// Delete removes an account with its goals and ledger entries.
func Delete(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account id", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}

// ListLedger returns all of an account's ledger entries in insertion order.
func ListLedger(entries *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account id", err, fiber.StatusBadRequest)
		}
		list, err := entries.ListByAccount(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list ledger entries", err)
		}
		items := make([]*dto.EntryRead, 0, len(list))
		for _, e := range list {
			items = append(items, ledgersvc.ToRead(e))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ledger entries", items)
	}
}
