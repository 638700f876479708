package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/lifeboard/pkg/domain"
)

func TestNewHashesPassword(t *testing.T) {
	u, err := New("Jane Doe", "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("secret124"))
}

func TestNewValidation(t *testing.T) {
	_, err := New("ab", "jane@example.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = New("Jane Doe", "not-an-email", "secret123")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = New("Jane Doe", "jane@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
