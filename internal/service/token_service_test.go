package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "voucher-settlement")

	token, expiresAt, err := svc.Generate("ops-user-1", "finance")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops-user-1", claims.Subject)
	assert.Equal(t, "finance", claims.Role)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("secret-a", time.Hour, "voucher-settlement")
	other := NewJWTTokenService("secret-b", time.Hour, "voucher-settlement")

	token, _, err := svc.Generate("ops-user-1", "finance")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "voucher-settlement")

	token, _, err := svc.Generate("ops-user-1", "finance")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "voucher-settlement")
	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
