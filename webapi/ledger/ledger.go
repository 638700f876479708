// Package ledger exposes the ledger entry endpoints.
package ledger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/config"
	ledgerdomain "github.com/lifeboard/lifeboard/pkg/domain/ledger"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/middleware"
	ledgersvc "github.com/lifeboard/lifeboard/pkg/service/ledger"
	"github.com/lifeboard/lifeboard/webapi/common"
)

// CreateRequest is the request body for POST /ledger.
type CreateRequest struct {
	AccountID   uuid.UUID       `json:"account_id" validate:"required"`
	Description string          `json:"description" validate:"required,min=3,max=150"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Kind        string          `json:"kind" validate:"required"`
	Category    string          `json:"category" validate:"required"`
}

// UpdateRequest is the request body for PUT /ledger/:id.
type UpdateRequest struct {
	Description string          `json:"description" validate:"required,min=3,max=150"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Kind        string          `json:"kind" validate:"required"`
	Category    string          `json:"category" validate:"required"`
}

// Routes registers the ledger endpoints.
func Routes(app *fiber.App, svc *ledgersvc.Service, jwtCfg *config.Jwt) {
	protected := middleware.JwtProtected(jwtCfg)
	app.Get("/ledger", protected, List(svc))
	app.Get("/ledger/:id", protected, Get(svc))
	app.Post("/ledger", protected, Create(svc))
	app.Put("/ledger/:id", protected, Update(svc))
	app.Delete("/ledger/:id", protected, Delete(svc))
}

// List returns a page of ledger entries.
func List(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		size := c.QueryInt("size", 20)
		result, err := svc.List(c.Context(), page, size)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list ledger entries", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ledger entries", result)
	}
}

// Get retrieves a ledger entry by id.
func Get(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid entry id", err, fiber.StatusBadRequest)
		}
		e, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get ledger entry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ledger entry found", ledgersvc.ToRead(e))
	}
}

// Create records a manual entry and applies it to the account balance.
func Create(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRequest](c)
		if input == nil {
			return err
		}
		e, err := svc.Create(c.Context(), dto.EntryCreate{
			AccountID:   input.AccountID,
			Description: input.Description,
			Amount:      input.Amount,
			Kind:        ledgerdomain.Kind(input.Kind),
			Category:    ledgerdomain.Category(input.Category),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create ledger entry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Ledger entry created", ledgersvc.ToRead(e))
	}
}

// Update rewrites an entry and reconciles the balance delta.
func Update(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid entry id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		e, err := svc.Update(c.Context(), id, dto.EntryUpdate{
			Description: input.Description,
			Amount:      input.Amount,
			Kind:        ledgerdomain.Kind(input.Kind),
			Category:    ledgerdomain.Category(input.Category),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update ledger entry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ledger entry updated", ledgersvc.ToRead(e))
	}
}

// Delete reverses the entry's balance effect and removes it.
func Delete(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid entry id", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete ledger entry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ledger entry deleted", nil)
	}
}
