package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	// Arrange
	svc := NewTokenService("test-secret", "freshtrack", 24*time.Hour)

	// Act
	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Verify(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestTokenService_Verify_EmptyToken(t *testing.T) {
	svc := NewTokenService("test-secret", "freshtrack", time.Hour)

	_, err := svc.Verify("")

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestTokenService_Verify_MalformedToken(t *testing.T) {
	svc := NewTokenService("test-secret", "freshtrack", time.Hour)

	_, err := svc.Verify("not-a-jwt")

	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", "freshtrack", -time.Minute)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one", "freshtrack", time.Hour)
	verifier := NewTokenService("secret-two", "freshtrack", time.Hour)

	token, err := issuer.Issue("a@b.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
