package routes

import (
	"github.com/gin-gonic/gin"

	addressControllers "github.com/diaandrei/Flexiro-sub000/controllers/address"
	cartControllers "github.com/diaandrei/Flexiro-sub000/controllers/cart"
	orderControllers "github.com/diaandrei/Flexiro-sub000/controllers/order"
	reviewControllers "github.com/diaandrei/Flexiro-sub000/controllers/review"
	userControllers "github.com/diaandrei/Flexiro-sub000/controllers/user"
	wishlistControllers "github.com/diaandrei/Flexiro-sub000/controllers/wishlist"
	"github.com/diaandrei/Flexiro-sub000/middleware"
)

// SetupCustomerRoutes registers all "/customer/*" endpoints. Requires a
// valid JWT; guest tokens may use the cart endpoints too.
func SetupCustomerRoutes(r *gin.Engine, deps Deps) {
	customerGroup := r.Group("/customer")
	customerGroup.Use(middleware.ValidateToken(deps.Cfg))
	{
		customerGroup.GET("/profile", userControllers.GetUser(deps.DB))
		customerGroup.PUT("/profile", userControllers.UpdateUser(deps.DB))
		customerGroup.GET("/dashboard", userControllers.GetDashboard(deps.DB))

		cartGroup := customerGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(deps.DB))
			cartGroup.POST("", cartControllers.UpdateCartItem(deps.DB, deps.Cfg))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.DB, deps.Cfg))
			cartGroup.DELETE("", cartControllers.ClearUserCart(deps.DB))
		}

		orderGroup := customerGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrderHandler(deps.DB, deps.Cfg, deps.Hub, deps.Log))
			orderGroup.GET("", orderControllers.GetUserOrdersHandler(deps.DB))
			orderGroup.GET("/:orderID", orderControllers.GetOrderHandler(deps.DB))
		}

		wishlistGroup := customerGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetWishlist(deps.DB))
			wishlistGroup.POST("", wishlistControllers.AddToWishlist(deps.DB))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(deps.DB))
		}

		addressGroup := customerGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.ListAddresses(deps.DB))
			addressGroup.POST("", addressControllers.CreateAddress(deps.DB))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(deps.DB))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(deps.DB))
		}

		customerGroup.POST("/reviews", reviewControllers.AddOrUpdateReviewHandler(deps.DB))
	}
}
