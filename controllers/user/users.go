package userControllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type UpdateUserInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Picture *string `json:"picture"`
}

// GET /customer/profile
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var user models.User
		if err := db.Preload("Cart.Items").First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "User Not Found", "No such user")
				return
			}
			response.FromError(c, err)
			return
		}

		response.OK(c, "Profile retrieved", user)
	}
}

// PUT /customer/profile
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "User Not Found", "No such user")
				return
			}
			response.FromError(c, err)
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Picture != nil {
			updates["picture"] = *input.Picture
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				response.FromError(c, err)
				return
			}
		}

		response.OK(c, "Profile updated", user)
	}
}

// GET /customer/dashboard returns counters plus the most recent orders.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var orderCount, wishlistCount, unreadCount int64
		if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
			response.FromError(c, err)
			return
		}
		if err := db.Model(&models.UserWishlist{}).Where("user_id = ?", userID).Count(&wishlistCount).Error; err != nil {
			response.FromError(c, err)
			return
		}
		if err := db.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).Count(&unreadCount).Error; err != nil {
			response.FromError(c, err)
			return
		}

		var recentOrders []models.Order
		if err := db.Where("user_id = ?", userID).
			Preload("Details").
			Order("created_at DESC").
			Limit(5).
			Find(&recentOrders).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Dashboard retrieved", gin.H{
			"order_count":          orderCount,
			"wishlist_count":       wishlistCount,
			"unread_notifications": unreadCount,
			"recent_orders":        recentOrders,
		})
	}
}
