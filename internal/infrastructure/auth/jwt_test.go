package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meatdelivery/backend/internal/infrastructure/config"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: expiration,
		Issuer:     "meat-delivery-backend",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, "meat-delivery-backend", claims.Issuer)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestValidateToken_AdminRolePreserved(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(uuid.New(), RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken(uuid.New(), RoleCustomer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:     "a-completely-different-secret-key",
		Expiration: time.Hour,
		Issuer:     "meat-delivery-backend",
	})

	token, err := svc.GenerateToken(uuid.New(), RoleCustomer)
	require.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService(time.Hour)

	claims, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_UnknownRole(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(uuid.New(), Role("superuser"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Nil(t, claims)
}

func TestGetExpiration(t *testing.T) {
	svc := newTestService(24 * time.Hour)
	assert.Equal(t, 24*time.Hour, svc.GetExpiration())
}
