package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-house/community-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 7*24*time.Hour)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return fixed }

	token, exp, err := tm.GenerateToken("user-1", domain.UserTypeModerator, false)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), exp)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.UserTypeModerator, claims.UserType)
}

func TestRememberMeExtendsExpiry(t *testing.T) {
	tm := NewTokenManager("secret", 24*time.Hour, 7*24*time.Hour)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return fixed }

	_, exp, err := tm.GenerateToken("user-1", domain.UserTypeMember, true)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(7*24*time.Hour), exp)
}

func TestParseRejectsExpiredAndForeignTokens(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 0)
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return issued }
	token, _, err := tm.GenerateToken("user-1", domain.UserTypeMember, false)
	require.NoError(t, err)

	tm.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = tm.ParseToken(token)
	assert.Error(t, err)

	other := NewTokenManager("other-secret", time.Hour, 0)
	other.now = func() time.Time { return issued }
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 0)
	claims := &Claims{UserType: domain.UserTypeAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.ParseToken(unsigned)
	assert.Error(t, err)
}
