package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/lifeboard/internal/fixtures/mocks"
	"github.com/lifeboard/lifeboard/pkg/config"
	"github.com/lifeboard/lifeboard/pkg/domain"
	userdomain "github.com/lifeboard/lifeboard/pkg/domain/user"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(uow *mocks.MockUnitOfWork) *Service {
	return New(uow, &config.Jwt{Secret: "test-secret", Expiry: time.Hour}, newTestLogger())
}

func TestLogin(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)
	svc := newService(uow)

	u, err := userdomain.New("Jane Doe", "jane@example.com", "secret123")
	require.NoError(t, err)

	uow.OnDo()
	uow.On("Users").Return(userRepo, nil)
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)

	tokenString, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	id, err := CurrentUserID(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestLoginWrongPassword(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)
	svc := newService(uow)

	u, err := userdomain.New("Jane Doe", "jane@example.com", "secret123")
	require.NoError(t, err)

	uow.OnDo()
	uow.On("Users").Return(userRepo, nil)
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)
	svc := newService(uow)

	uow.OnDo()
	uow.On("Users").Return(userRepo, nil)
	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	// The same error is surfaced for a missing user and a bad password.
	_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUserIDMalformed(t *testing.T) {
	token := &jwt.Token{Claims: jwt.MapClaims{}}
	_, err := CurrentUserID(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	token = &jwt.Token{Claims: jwt.MapClaims{"sub": "not-a-uuid"}}
	_, err = CurrentUserID(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
