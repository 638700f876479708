// Package auth exposes the login endpoint.
package auth

import (
	"github.com/gofiber/fiber/v2"

	authsvc "github.com/lifeboard/lifeboard/pkg/service/auth"
	"github.com/lifeboard/lifeboard/webapi/common"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Routes registers the auth endpoints.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/auth/login", Login(svc))
}

// Login returns a handler that exchanges credentials for a bearer token.
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		token, err := svc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged in", fiber.Map{"token": token})
	}
}
