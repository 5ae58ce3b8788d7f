package jwtauth

import (
	"context"
	"testing"
	"time"

	"medication-reminder/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	v := NewVerifier(Config{Secret: "s3cret", Issuer: "medication-reminder", Audience: "api"})

	tok, err := v.Issue(auth.Claims{UserID: "u1", Email: "ana@example.com", Anonymous: true}, time.Hour)
	require.NoError(t, err)

	c, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u1", Email: "ana@example.com", Anonymous: true}, c)
}

func TestVerify_Rejects(t *testing.T) {
	v := NewVerifier(Config{Secret: "s3cret", Issuer: "medication-reminder"})
	ctx := context.Background()

	_, err := v.Verify(ctx, " ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	other, err := NewVerifier(Config{Secret: "other", Issuer: "medication-reminder"}).Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, other)
	assert.Error(t, err)

	wrongIss, err := NewVerifier(Config{Secret: "s3cret", Issuer: "someone-else"}).Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, wrongIss)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "u1",
		Issuer:    "medication-reminder",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}})
	s, err := expired.SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = v.Verify(ctx, s)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSub, err := v.Issue(auth.Claims{}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, noSub)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	ns, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.Verify(ctx, ns)
	assert.Error(t, err)
}

func TestVerify_NotConfigured(t *testing.T) {
	_, err := NewVerifier(Config{}).Verify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
