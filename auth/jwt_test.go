package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/models"
)

func parseClaims(t *testing.T, cfg *config.Config, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestIssueTokenClaims(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	user := &models.User{ID: "user-1", Email: "jo@example.com"}

	tokenString, err := IssueToken(cfg, user)
	require.NoError(t, err)

	claims := parseClaims(t, cfg, tokenString)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "jo@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, false, claims["is_admin"])
	assert.Equal(t, false, claims["is_seller"])
}

func TestIssueTokenRolePrecedence(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}

	seller, err := IssueToken(cfg, &models.User{ID: "s", IsSeller: true})
	require.NoError(t, err)
	assert.Equal(t, "seller", parseClaims(t, cfg, seller)["role"])

	// Admin wins even for a user who is also a seller.
	admin, err := IssueToken(cfg, &models.User{ID: "a", IsSeller: true, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, "admin", parseClaims(t, cfg, admin)["role"])
}

func TestIssueTokenRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}
	tokenString, err := IssueToken(cfg, &models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	assert.Error(t, err)
}

func TestIssueGuestToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", GuestTTL: 24 * time.Hour}

	tokenString, err := IssueGuestToken(cfg, "guest-1")
	require.NoError(t, err)

	claims := parseClaims(t, cfg, tokenString)
	assert.Equal(t, "guest-1", claims["user_id"])
	assert.Equal(t, "guest", claims["role"])
	assert.Equal(t, false, claims["is_admin"])
}
