package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/diaandrei/Flexiro-sub000/controllers/order"
	productcontroller "github.com/diaandrei/Flexiro-sub000/controllers/product"
	shopControllers "github.com/diaandrei/Flexiro-sub000/controllers/shop"
	"github.com/diaandrei/Flexiro-sub000/middleware"
)

// SetupSellerRoutes registers all "/seller/*" endpoints. Requires a JWT
// with the seller claim.
func SetupSellerRoutes(r *gin.Engine, deps Deps) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken(deps.Cfg), middleware.RequireSeller())
	{
		shopGroup := sellerGroup.Group("/shop")
		{
			shopGroup.GET("", shopControllers.GetMyShop(deps.DB))
			shopGroup.PUT("", shopControllers.UpdateMyShop(deps.DB, deps.Cfg))
			shopGroup.PUT("/status", shopControllers.UpdateSellerStatusHandler(deps.DB))
		}

		productGroup := sellerGroup.Group("/products")
		{
			productGroup.POST("", productcontroller.CreateProduct(deps.DB, deps.Cfg, deps.Catalog))
			productGroup.PUT("/:id", productcontroller.UpdateProduct(deps.DB, deps.Cfg, deps.Catalog))
			productGroup.DELETE("/:id", productcontroller.DeleteProduct(deps.DB, deps.Catalog))
			productGroup.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB, deps.Catalog))
			productGroup.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		orderGroup := sellerGroup.Group("/orders")
		{
			orderGroup.GET("", orderControllers.GetShopOrdersHandler(deps.DB))
			orderGroup.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
			orderGroup.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(deps.DB))
		}
	}
}
