package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// ValidateToken parses the bearer token with the injected secret and
// puts the identity claims on the context.
func ValidateToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Fail(c, response.KindUnauthorized, "Unauthorized", "Authorization header is missing")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Fail(c, response.KindUnauthorized, "Unauthorized", "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Fail(c, response.KindUnauthorized, "Unauthorized", "Invalid token claims")
			c.Abort()
			return
		}

		c.Set("user_id", claims["user_id"])
		c.Set("is_admin", claims["is_admin"] == true)
		c.Set("is_seller", claims["is_seller"] == true)

		c.Next()
	}
}

func RequireSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_seller") {
			response.Fail(c, response.KindForbidden, "Forbidden", "Seller account required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			response.Fail(c, response.KindForbidden, "Forbidden", "Admin account required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID pulls the authenticated principal off the context.
func UserID(c *gin.Context) string {
	v, _ := c.Get("user_id")
	id, _ := v.(string)
	return id
}
