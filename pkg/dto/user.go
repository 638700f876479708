package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRead is the read model of a user. The password hash never leaves the
// service layer.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
