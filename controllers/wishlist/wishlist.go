package wishlistControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	ShopID    uint `json:"shop_id" binding:"required"`
}

// GET /customer/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var entries []models.UserWishlist
		if err := db.Where("user_id = ?", userID).
			Preload("Product").
			Order("created_at DESC").
			Find(&entries).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Wishlist retrieved", entries)
	}
}

// POST /customer/wishlist keeps one row per (user, product, shop).
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ? AND shop_id = ?", input.ProductID, input.ShopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Product Not Found", "The product does not exist in this shop")
				return
			}
			response.FromError(c, err)
			return
		}

		var existing models.UserWishlist
		err := db.Where("user_id = ? AND product_id = ? AND shop_id = ?",
			userID, input.ProductID, input.ShopID).First(&existing).Error
		if err == nil {
			response.OK(c, "Already in wishlist", existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.FromError(c, err)
			return
		}

		entry := models.UserWishlist{
			UserID:    userID,
			ProductID: input.ProductID,
			ShopID:    input.ShopID,
		}
		if err := db.Create(&entry).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.Created(c, "Added to wishlist", entry)
	}
}

// DELETE /customer/wishlist/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "product_id must be numeric")
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.UserWishlist{})
		if result.Error != nil {
			response.FromError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, response.KindNotFound, "Wishlist Entry Not Found", "The product is not in the wishlist")
			return
		}

		response.OK(c, "Removed from wishlist", nil)
	}
}
