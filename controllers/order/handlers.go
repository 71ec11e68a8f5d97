package orderControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/config"
	notificationControllers "github.com/diaandrei/Flexiro-sub000/controllers/notification"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// POST /customer/orders
func PlaceOrderHandler(db *gorm.DB, cfg *config.Config, hub *notificationControllers.Hub, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		order, notifications, err := PlaceOrder(db, cfg, userID, req)
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("order placement failed")
			response.FromError(c, err)
			return
		}

		log.Info().
			Str("order_number", order.OrderNumber).
			Str("user_id", userID).
			Str("total", order.TotalAmount.String()).
			Int("lines", len(order.Details)).
			Msg("order placed")

		// Live push happens after commit; the rows are already durable.
		for _, n := range notifications {
			hub.Push(n)
		}

		response.Created(c, "Order placed successfully", order)
	}
}

// GET /customer/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Preload("Details").
			Preload("ShippingAddress").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Orders retrieved", orders)
	}
}

// GET /customer/orders/:orderID accepts a numeric id or an order number.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		param := c.Param("orderID")

		// The id column is an integer; an order number must never reach
		// it or postgres rejects the whole query.
		query := db.Where("user_id = ?", userID)
		if id, err := strconv.ParseUint(param, 10, 64); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("order_number = ?", param)
		}

		var order models.Order
		if err := query.
			Preload("Details").
			Preload("ShippingAddress").
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Order Not Found", "No such order for this user")
				return
			}
			response.FromError(c, err)
			return
		}

		response.OK(c, "Order retrieved", order)
	}
}

// GET /seller/orders returns orders containing at least one line from
// the seller's shop; preloaded details are narrowed to that shop.
func GetShopOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var shop models.Shop
		if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Shop Not Found", "No shop exists for this seller")
				return
			}
			response.FromError(c, err)
			return
		}

		var orders []models.Order
		if err := db.Where("id IN (?)",
			db.Model(&models.OrderDetail{}).Select("order_id").Where("shop_id = ?", shop.ID)).
			Preload("Details", "shop_id = ?", shop.ID).
			Preload("User").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Orders retrieved", orders)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Details").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Orders retrieved", orders)
	}
}

// sellerOrderScope narrows an order mutation to orders that contain at
// least one line from the calling seller's shop.
func sellerOrderScope(db *gorm.DB, c *gin.Context) (*gorm.DB, bool) {
	var shop models.Shop
	if err := db.Where("owner_id = ?", middleware.UserID(c)).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.KindNotFound, "Shop Not Found", "No shop exists for this seller")
			return nil, false
		}
		response.FromError(c, err)
		return nil, false
	}

	return db.Model(&models.Order{}).Where("id IN (?)",
		db.Model(&models.OrderDetail{}).Select("order_id").Where("shop_id = ?", shop.ID)), true
}

// PUT /seller/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "orderID must be numeric")
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			response.FromError(c, err)
			return
		}

		scope, ok := sellerOrderScope(db, c)
		if !ok {
			return
		}
		result := scope.Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			response.FromError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, response.KindNotFound, "Order Not Found", "No such order")
			return
		}

		response.OK(c, "Order status updated", gin.H{"status": newStatus})
	}
}

// PUT /seller/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "orderID must be numeric")
			return
		}

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}
		switch req.PaymentStatus {
		case models.PaymentStatusUnpaid, models.PaymentStatusPaid, models.PaymentStatusFailed:
		default:
			response.Fail(c, response.KindValidation, "Invalid Status", "Unknown payment status: "+req.PaymentStatus)
			return
		}

		scope, ok := sellerOrderScope(db, c)
		if !ok {
			return
		}
		result := scope.Where("id = ?", orderID).Update("payment_status", req.PaymentStatus)
		if result.Error != nil {
			response.FromError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, response.KindNotFound, "Order Not Found", "No such order")
			return
		}

		response.OK(c, "Payment status updated", gin.H{"payment_status": req.PaymentStatus})
	}
}
