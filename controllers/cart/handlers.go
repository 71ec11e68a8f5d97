package cartControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// GET /customer/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Cart Not Found", "No cart exists for this user")
				return
			}
			response.FromError(c, err)
			return
		}

		response.OK(c, "Cart retrieved", cart)
	}
}

// POST /customer/cart
func UpdateCartItem(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		cart, err := AddOrUpdateItem(db, cfg, userID, input)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Cart updated", cart)
	}
}

// DELETE /customer/cart/:product_id
func DeleteCartItem(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "product_id must be numeric")
			return
		}

		cart, err := RemoveItem(db, cfg, userID, uint(productID))
		if err != nil {
			response.FromError(c, err)
			return
		}
		if cart == nil {
			response.OK(c, "Cart is now empty", nil)
			return
		}

		response.OK(c, "Cart item removed", cart)
	}
}

// DELETE /customer/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		if err := ClearCart(db, userID); err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Cart cleared", nil)
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			response.Fail(c, response.KindValidation, "Invalid input", "user_id is required")
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Cart Not Found", "No cart exists for this user")
				return
			}
			response.FromError(c, err)
			return
		}

		response.OK(c, "Cart retrieved", cart)
	}
}
