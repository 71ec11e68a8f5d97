package productcontroller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// DELETE /seller/products/:id soft deletes via gorm.DeletedAt.
func DeleteProduct(db *gorm.DB, catalog cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		shop, err := sellerShop(db, userID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Invalid product ID")
			return
		}

		result := db.Where("id = ? AND shop_id = ?", id, shop.ID).Delete(&models.Product{})
		if result.Error != nil {
			response.FromError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, response.KindNotFound, "Product Not Found", "No such product in this shop")
			return
		}

		invalidateCatalog(c.Request.Context(), catalog)
		response.OK(c, "Product deleted", nil)
	}
}
