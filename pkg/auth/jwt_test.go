package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "doctor-channel", time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "jane@example.com", "ADMIN")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("one", "doctor-channel", time.Hour).GenerateAccessToken("u", "e@x.io", "USER")
	require.NoError(t, err)

	_, err = NewJWTService("two", "doctor-channel", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService("secret", "doctor-channel", time.Minute).(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateAccessToken("u", "e@x.io", "USER")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
