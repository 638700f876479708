package webapi

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/lifeboard/internal/fixtures/mocks"
	"github.com/lifeboard/lifeboard/pkg/config"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	deps := &config.Deps{
		Uow:    uow,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.App{
			Jwt:       config.Jwt{Secret: "test-secret", Expiry: time.Hour},
			RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		},
	}
	return New(deps)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{"/goal", "/account", "/ledger"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
