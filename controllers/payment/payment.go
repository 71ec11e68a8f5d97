package paymentControllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type ProcessPaymentInput struct {
	OrderNumber        string `json:"order_number" binding:"required"`
	PaymentMethodNonce string `json:"payment_method_nonce" binding:"required"`
}

// POST /payment/client-token
func GenerateClientTokenHandler(gateway *GatewayClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := gateway.GenerateClientToken(c.Request.Context())
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Client token generated", gin.H{"client_token": token})
	}
}

// POST /payment/process charges an unpaid order for the caller and
// records the transaction. A declined charge leaves the order unpaid
// and stores a failed Payment row.
func ProcessPaymentHandler(db *gorm.DB, gateway *GatewayClient, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input ProcessPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		var order models.Order
		if err := db.Where("order_number = ? AND user_id = ?", input.OrderNumber, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Order Not Found", "No such order for this user")
				return
			}
			response.FromError(c, err)
			return
		}
		if order.PaymentStatus == models.PaymentStatusPaid {
			response.Fail(c, response.KindConflict, "Order Already Paid", "This order has already been paid")
			return
		}

		transactionID, err := gateway.Sale(c.Request.Context(), order.TotalAmount, input.PaymentMethodNonce, order.OrderNumber)
		if err != nil {
			log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("payment failed")
			payment := models.Payment{
				OrderID:       order.ID,
				PaymentMethod: order.PaymentMethod,
				PaymentStatus: models.PaymentStatusFailed,
				Amount:        order.TotalAmount,
			}
			_ = db.Create(&payment).Error
			response.Fail(c, response.KindValidation, "Payment Failed", err.Error())
			return
		}

		var payment models.Payment
		err = db.Transaction(func(tx *gorm.DB) error {
			payment = models.Payment{
				OrderID:       order.ID,
				PaymentMethod: order.PaymentMethod,
				TransactionID: transactionID,
				PaymentStatus: models.PaymentStatusPaid,
				Amount:        order.TotalAmount,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			return tx.Model(&order).Update("payment_status", models.PaymentStatusPaid).Error
		})
		if err != nil {
			response.FromError(c, err)
			return
		}

		log.Info().
			Str("order_number", order.OrderNumber).
			Str("transaction_id", transactionID).
			Str("amount", order.TotalAmount.String()).
			Msg("payment captured")

		response.OK(c, "Payment processed", payment)
	}
}
