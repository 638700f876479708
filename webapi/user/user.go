// Package user exposes registration and user maintenance endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lifeboard/lifeboard/pkg/config"
	"github.com/lifeboard/lifeboard/pkg/middleware"
	usersvc "github.com/lifeboard/lifeboard/pkg/service/user"
	"github.com/lifeboard/lifeboard/webapi/common"
)

// RegisterRequest is the request body for POST /user.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateRequest is the request body for PUT /user/:id.
type UpdateRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=150"`
	Email string `json:"email" validate:"required,email"`
}

// Routes registers the user endpoints. Registration is public; the rest
// require a token.
func Routes(app *fiber.App, svc *usersvc.Service, jwtCfg *config.Jwt) {
	app.Post("/user", Register(svc))
	app.Get("/user/:id", middleware.JwtProtected(jwtCfg), Get(svc))
	app.Put("/user/:id", middleware.JwtProtected(jwtCfg), Update(svc))
	app.Delete("/user/:id", middleware.JwtProtected(jwtCfg), Delete(svc))
}

// Register creates a user and their zero-balance account.
func Register(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Register(c.Context(), input.Name, input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to register user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", usersvc.ToRead(u))
	}
}

// Get retrieves a user by id.
func Get(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user id", err, fiber.StatusBadRequest)
		}
		u, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", usersvc.ToRead(u))
	}
}

// Update renames a user or changes their email.
func Update(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Update(c.Context(), id, input.Name, input.Email)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", usersvc.ToRead(u))
	}
}

// Delete removes a user and their account.
func Delete(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user id", err, fiber.StatusBadRequest)
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User deleted", nil)
	}
}
