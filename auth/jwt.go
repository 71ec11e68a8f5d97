package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/models"
)

// IssueToken signs an HS256 bearer token for a registered user. The
// signing key comes from config, never from package state.
func IssueToken(cfg *config.Config, user *models.User) (string, error) {
	role := "user"
	if user.IsSeller {
		role = "seller"
	}
	if user.IsAdmin {
		role = "admin"
	}

	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"role":      role,
		"is_admin":  user.IsAdmin,
		"is_seller": user.IsSeller,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(cfg.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func IssueGuestToken(cfg *config.Config, guestID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   guestID,
		"role":      "guest",
		"is_admin":  false,
		"is_seller": false,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(cfg.GuestTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
