package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/diaandrei/Flexiro-sub000/controllers/product"
	reviewControllers "github.com/diaandrei/Flexiro-sub000/controllers/review"
	shopControllers "github.com/diaandrei/Flexiro-sub000/controllers/shop"
)

// SetupPublicRoutes registers the unauthenticated browse endpoints.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	r.GET("/shops", shopControllers.ListShops(deps.DB))
	r.GET("/shops/:id", shopControllers.GetShop(deps.DB))

	r.GET("/products", productcontroller.GetProducts(deps.DB, deps.Catalog))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.DB))
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviewsHandler(deps.DB))

	r.GET("/categories", productcontroller.GetAllCategories(deps.DB))
}
