package notificationControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// GET /notifications
func ListNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var notifications []models.Notification
		query := db.Where("user_id = ?", userID).Order("created_at DESC")
		if c.Query("unread") == "true" {
			query = query.Where("is_read = ?", false)
		}
		if err := query.Find(&notifications).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Notifications retrieved", notifications)
	}
}

// PUT /notifications/:id/read
func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "id must be numeric")
			return
		}

		var notification models.Notification
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Notification Not Found", "No such notification for this user")
				return
			}
			response.FromError(c, err)
			return
		}

		if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Notification marked as read", notification)
	}
}

// PUT /notifications/read-all
func MarkAllNotificationsRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		if err := db.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "All notifications marked as read", nil)
	}
}
