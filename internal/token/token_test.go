package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *Service {
	t.Helper()
	svc, err := New(secret, 7*24*time.Hour)
	require.NoError(t, err)
	return svc
}

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateValidate_Roundtrip(t *testing.T) {
	svc := newTestService(t, "test-secret")

	tokenString, err := svc.Generate(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestValidate_WrongKey(t *testing.T) {
	svc := newTestService(t, "test-secret")
	other := newTestService(t, "another-secret")

	tokenString, err := svc.Generate(1, "a@x.com")
	require.NoError(t, err)

	_, err = other.Validate(tokenString)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	svc := newTestService(t, "test-secret")

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	tokenString, err := svc.Generate(1, "a@x.com")
	require.NoError(t, err)

	// Still valid one hour before the 7-day expiry.
	svc.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Hour) }
	_, err = svc.Validate(tokenString)
	require.NoError(t, err)

	// Rejected one hour after it.
	svc.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Hour) }
	_, err = svc.Validate(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidate_Garbage(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.Validate("not-a-token")
	assert.Error(t, err)
}
