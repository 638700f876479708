// Package webapi assembles the HTTP surface: services are built from the
// dependency container and every resource package registers its routes on
// one fiber app.
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lifeboard/lifeboard/pkg/config"
	accountsvc "github.com/lifeboard/lifeboard/pkg/service/account"
	authsvc "github.com/lifeboard/lifeboard/pkg/service/auth"
	goalsvc "github.com/lifeboard/lifeboard/pkg/service/goal"
	ledgersvc "github.com/lifeboard/lifeboard/pkg/service/ledger"
	usersvc "github.com/lifeboard/lifeboard/pkg/service/user"
	"github.com/lifeboard/lifeboard/webapi/account"
	"github.com/lifeboard/lifeboard/webapi/auth"
	"github.com/lifeboard/lifeboard/webapi/common"
	"github.com/lifeboard/lifeboard/webapi/goal"
	"github.com/lifeboard/lifeboard/webapi/ledger"
	"github.com/lifeboard/lifeboard/webapi/user"
)

// New builds all services and returns the fiber app with routes registered.
func New(deps *config.Deps) *fiber.App {
	accountSvc := accountsvc.New(deps.Uow, deps.Logger)
	ledgerSvc := ledgersvc.New(deps.Uow, accountSvc, deps.Logger)
	goalSvc := goalsvc.New(deps.Uow, accountSvc, ledgerSvc, deps.Logger)
	userSvc := usersvc.New(deps.Uow, accountSvc, deps.Logger)
	authSvc := authsvc.New(deps.Uow, &deps.Config.Jwt, deps.Logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, status)
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if i := strings.Index(forwardedFor, ","); i != -1 {
					return strings.TrimSpace(forwardedFor[:i])
				}
				return strings.TrimSpace(forwardedFor)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil, fiber.StatusTooManyRequests)
		},
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.Routes(app, authSvc)
	user.Routes(app, userSvc, &deps.Config.Jwt)
	account.Routes(app, accountSvc, ledgerSvc, &deps.Config.Jwt)
	goal.Routes(app, goalSvc, &deps.Config.Jwt)
	ledger.Routes(app, ledgerSvc, &deps.Config.Jwt)

	return app
}
