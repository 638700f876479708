// Package goal exposes the goal endpoints, including fund and withdraw.
package goal

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeboard/lifeboard/pkg/config"
	"github.com/lifeboard/lifeboard/pkg/dto"
	"github.com/lifeboard/lifeboard/pkg/middleware"
	goalsvc "github.com/lifeboard/lifeboard/pkg/service/goal"
	"github.com/lifeboard/lifeboard/webapi/common"
)

// CreateRequest is the request body for POST /goal. The initial allocation
// is reserved from the account balance at creation.
type CreateRequest struct {
	AccountID        uuid.UUID       `json:"account_id" validate:"required"`
	Name             string          `json:"name" validate:"required,min=3,max=150"`
	TargetAmount     decimal.Decimal `json:"target_amount" validate:"required"`
	InitialAllocated decimal.Decimal `json:"initial_allocated"`
	Deadline         time.Time       `json:"deadline" validate:"required"`
}

// UpdateRequest is the request body for PUT /goal/:id. Status and allocated
// amount are not accepted here: status is derived, allocation moves only
// through fund/withdraw.
type UpdateRequest struct {
	Name         string          `json:"name" validate:"required,min=3,max=150"`
	TargetAmount decimal.Decimal `json:"target_amount" validate:"required"`
	Deadline     time.Time       `json:"deadline" validate:"required"`
}

// AmountRequest is the request body for fund/withdraw.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// Routes registers the goal endpoints.
func Routes(app *fiber.App, svc *goalsvc.Service, jwtCfg *config.Jwt) {
	protected := middleware.JwtProtected(jwtCfg)
	app.Get("/goal", protected, List(svc))
	app.Get("/goal/:id", protected, Get(svc))
	app.Post("/goal", protected, Create(svc))
	app.Put("/goal/:id", protected, Update(svc))
	app.Delete("/goal/:id", protected, Delete(svc))
	app.Post("/goal/:id/fund", protected, Fund(svc))
	app.Post("/goal/:id/withdraw", protected, Withdraw(svc))
}

// List returns a page of goals.
func List(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		size := c.QueryInt("size", 20)
		result, err := svc.List(c.Context(), page, size)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list goals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goals", result)
	}
}

// Get retrieves a goal by id.
func Get(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		g, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal found", goalsvc.ToRead(g))
	}
}

// Create reserves funds from the account into a new goal.
func Create(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRequest](c)
		if input == nil {
			return err
		}
		g, err := svc.Create(c.Context(), dto.GoalCreate{
			AccountID:        input.AccountID,
			Name:             input.Name,
			TargetAmount:     input.TargetAmount,
			InitialAllocated: input.InitialAllocated,
			Deadline:         input.Deadline,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Goal created", goalsvc.ToRead(g))
	}
}

// Update renames a goal and moves its target/deadline, propagating the new
// name to the goal's ledger entries.
func Update(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		g, err := svc.Update(c.Context(), id, dto.GoalUpdate{
			Name:         input.Name,
			TargetAmount: input.TargetAmount,
			Deadline:     input.Deadline,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal updated", goalsvc.ToRead(g))
	}
}

// Delete refunds the goal's allocation and removes its ledger entries.
func Delete(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal deleted", nil)
	}
}

// Fund moves funds from the account's free balance into the goal.
func Fund(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		g, err := svc.Fund(c.Context(), id, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fund goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal funded", goalsvc.ToRead(g))
	}
}

// Withdraw moves funds from the goal back into the account's free balance.
func Withdraw(svc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		g, err := svc.Withdraw(c.Context(), id, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to withdraw from goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal withdrawal complete", goalsvc.ToRead(g))
	}
}
