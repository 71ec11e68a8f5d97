package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/diaandrei/Flexiro-sub000/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB, deps.Cfg))
		authGroup.POST("/register-seller", auth.RegisterSeller(deps.DB, deps.Cfg))
		authGroup.POST("/login", auth.Login(deps.DB, deps.Cfg))
		authGroup.POST("/guest", auth.CreateGuestUser(deps.DB, deps.Cfg))
	}
}
