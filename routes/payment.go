package routes

import (
	"github.com/gin-gonic/gin"

	notificationControllers "github.com/diaandrei/Flexiro-sub000/controllers/notification"
	paymentControllers "github.com/diaandrei/Flexiro-sub000/controllers/payment"
	"github.com/diaandrei/Flexiro-sub000/middleware"
)

// SetupPaymentRoutes registers the payment-gateway proxy endpoints.
func SetupPaymentRoutes(r *gin.Engine, deps Deps) {
	paymentGroup := r.Group("/payment")
	paymentGroup.Use(middleware.ValidateToken(deps.Cfg))
	{
		paymentGroup.POST("/client-token", paymentControllers.GenerateClientTokenHandler(deps.Gateway))
		paymentGroup.POST("/process", paymentControllers.ProcessPaymentHandler(deps.DB, deps.Gateway, deps.Log))
	}
}

// SetupNotificationRoutes registers the notification endpoints,
// including the live websocket stream.
func SetupNotificationRoutes(r *gin.Engine, deps Deps) {
	notificationGroup := r.Group("/notifications")
	notificationGroup.Use(middleware.ValidateToken(deps.Cfg))
	{
		notificationGroup.GET("", notificationControllers.ListNotifications(deps.DB))
		notificationGroup.PUT("/:id/read", notificationControllers.MarkNotificationRead(deps.DB))
		notificationGroup.PUT("/read-all", notificationControllers.MarkAllNotificationsRead(deps.DB))
		notificationGroup.GET("/ws", notificationControllers.StreamHandler(deps.Hub))
	}
}
