package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/diaandrei/Flexiro-sub000/controllers/admin"
	cartControllers "github.com/diaandrei/Flexiro-sub000/controllers/cart"
	orderControllers "github.com/diaandrei/Flexiro-sub000/controllers/order"
	productcontroller "github.com/diaandrei/Flexiro-sub000/controllers/product"
	"github.com/diaandrei/Flexiro-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT
// with the admin claim.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(deps.Cfg), middleware.RequireAdmin())
	{
		shopGroup := adminGroup.Group("/shops")
		{
			shopGroup.GET("", adminController.ListShops(deps.DB))
			shopGroup.PUT("/:id/status", adminController.UpdateShopStatusHandler(deps.DB))
		}

		adminGroup.GET("/users", adminController.GetAllUsers(deps.DB))
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(deps.DB))
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(deps.DB))

		categoryGroup := adminGroup.Group("/categories")
		{
			categoryGroup.POST("", productcontroller.CreateCategory(deps.DB))
			categoryGroup.PUT("/:id", productcontroller.UpdateCategory(deps.DB))
			categoryGroup.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}
	}
}
