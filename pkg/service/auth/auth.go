// Package auth provides JWT login for the API surface.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lifeboard/lifeboard/pkg/config"
	"github.com/lifeboard/lifeboard/pkg/domain"
	"github.com/lifeboard/lifeboard/pkg/repository"
)

// Service authenticates users and issues signed tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates a Service.
func New(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies the email/password pair and returns a signed HS256 token.
// Invalid credentials surface as ErrUnauthorized without revealing whether
// the email exists.
func (s *Service) Login(ctx context.Context, email, password string) (token string, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.Users()
		if err != nil {
			return err
		}
		u, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return domain.ErrUnauthorized
		}
		if !u.CheckPassword(password) {
			return domain.ErrUnauthorized
		}
		claims := jwt.MapClaims{
			"sub":   u.ID.String(),
			"email": u.Email,
			"exp":   time.Now().Add(s.cfg.Expiry).Unix(),
			"iat":   time.Now().Unix(),
		}
		token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(s.cfg.Secret))
		return err
	})
	if err != nil {
		token = ""
	}
	return
}

// CurrentUserID extracts the authenticated user's id from a verified token.
func CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: malformed claims", domain.ErrUnauthorized)
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing subject", domain.ErrUnauthorized)
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid subject", domain.ErrUnauthorized)
	}
	return id, nil
}
