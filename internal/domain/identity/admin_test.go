package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdmin(t *testing.T) {
	admin, err := NewAdmin("shiv", "123")
	require.NoError(t, err)
	require.NotNil(t, admin)

	assert.NotEqual(t, "", admin.ID.String())
	assert.Equal(t, "shiv", admin.Username)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEqual(t, "123", admin.PasswordHash)
	assert.False(t, admin.CreatedAt.IsZero())
}

func TestNewAdmin_EmptyUsername(t *testing.T) {
	admin, err := NewAdmin("", "secret")
	assert.Error(t, err)
	assert.Nil(t, admin)
}

func TestNewAdmin_EmptyPassword(t *testing.T) {
	admin, err := NewAdmin("shiv", "")
	assert.Error(t, err)
	assert.Nil(t, admin)
}

func TestAdmin_VerifyPassword(t *testing.T) {
	admin, err := NewAdmin("shiv", "123")
	require.NoError(t, err)

	assert.True(t, admin.VerifyPassword("123"))
	assert.False(t, admin.VerifyPassword("wrong"))
	assert.False(t, admin.VerifyPassword(""))
}
