package service

import (
	"testing"
	"time"

	"github.com/atelier-nord/portfolio-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *authService {
	return &authService{cfg: &config.Config{
		AdminPassword: "architecture2024",
		JWTSecret:     "test-signing-secret",
		JWTExpiry:     24,
	}}
}

func TestLogin_ValidPassword(t *testing.T) {
	s := newTestAuthService()

	tokenString, err := s.Login("architecture2024")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := s.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	subject, err := s.SubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogin_InvalidPassword(t *testing.T) {
	s := newTestAuthService()

	for _, password := range []string{"", "wrong", "architecture2024 ", "ARCHITECTURE2024"} {
		tokenString, err := s.Login(password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "password %q", password)
		assert.Empty(t, tokenString)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestAuthService()

	tokenString, err := s.generateToken(-time.Minute)
	require.NoError(t, err)

	_, err = s.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	s := newTestAuthService()

	other := &authService{cfg: &config.Config{
		AdminPassword: "architecture2024",
		JWTSecret:     "a-different-secret",
		JWTExpiry:     24,
	}}
	tokenString, err := other.generateToken(time.Hour)
	require.NoError(t, err)

	_, err = s.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	s := newTestAuthService()

	for _, tokenString := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := s.ValidateToken(tokenString)
		assert.Error(t, err, "token %q", tokenString)
	}
}
