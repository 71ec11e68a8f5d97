package orderControllers

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diaandrei/Flexiro-sub000/config"
	addressControllers "github.com/diaandrei/Flexiro-sub000/controllers/address"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type PlaceOrderRequest struct {
	ShippingAddress addressControllers.AddressInput `json:"shipping_address" binding:"required"`
	PaymentMethod   string                          `json:"payment_method" binding:"required"`
}

// mapOrderStatus validates a client-supplied status string.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusNew, models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCanceled,
		models.OrderStatusReturned, models.OrderStatusCompleted:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", response.NewError(response.KindValidation, "Invalid Status", "Unknown order status: "+status)
	}
}

// generateOrderNumber yields e.g. ORD-20250908130500-1a2b3c4d. The
// random suffix keeps concurrent checkouts from colliding on the same
// timestamp.
func generateOrderNumber() string {
	return "ORD-" + time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// PlaceOrder converts the user's cart into a persisted order. The whole
// conversion is one transaction: address resolution, order and detail
// rows, stock decrements, seller notifications, and the cart discard
// all commit together or not at all. Products are locked FOR UPDATE so
// concurrent checkouts cannot both take the last unit.
func PlaceOrder(db *gorm.DB, cfg *config.Config, userID string, req PlaceOrderRequest) (*models.Order, []models.Notification, error) {
	var order models.Order
	var notifications []models.Notification

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(response.KindNotFound, "Cart Not Found", "No cart exists for this user")
			}
			return err
		}
		if len(cart.Items) == 0 {
			return response.NewError(response.KindValidation, "Cart is empty", "There is nothing to order")
		}

		address, err := addressControllers.FindOrCreate(tx, userID, req.ShippingAddress)
		if err != nil {
			return err
		}

		itemsTotal := decimal.Zero
		for _, item := range cart.Items {
			lineGross := item.PricePerUnit.Mul(decimal.NewFromInt(int64(item.Quantity)))
			itemsTotal = itemsTotal.Add(lineGross.Sub(item.DiscountAmount))
		}
		tax := itemsTotal.Mul(cfg.TaxRate).Round(2)
		totalAmount := itemsTotal.Add(tax).Add(cfg.ShippingCost)

		order = models.Order{
			OrderNumber:       generateOrderNumber(),
			UserID:            userID,
			ShippingAddressID: address.ID,
			BillingAddressID:  address.ID,
			ItemsTotal:        itemsTotal,
			Tax:               tax,
			ShippingCost:      cfg.ShippingCost,
			TotalAmount:       totalAmount,
			Status:            models.OrderStatusNew,
			PaymentStatus:     models.PaymentStatusUnpaid,
			PaymentMethod:     req.PaymentMethod,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		shopIDs := make([]uint, 0, len(cart.Items))
		seenShops := make(map[uint]bool)

		for _, item := range cart.Items {
			productQuery := tx
			// sqlite has no row-level locks; the clause is postgres-only.
			if tx.Dialector.Name() == "postgres" {
				productQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			var product models.Product
			if err := productQuery.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewError(response.KindNotFound, "Product Not Found",
						"Product "+item.ProductName+" is no longer available")
				}
				return err
			}
			if product.StockQuantity < item.Quantity {
				return response.NewError(response.KindValidation, "Insufficient Stock",
					"Not enough stock for "+product.Name)
			}

			product.StockQuantity -= item.Quantity
			if product.StockQuantity <= 0 {
				product.Status = models.ProductStatusSoldOut
			}
			if err := tx.Select("stock_quantity", "status").Save(&product).Error; err != nil {
				return err
			}

			detail := models.OrderDetail{
				OrderID:        order.ID,
				ShopID:         item.ShopID,
				ProductID:      item.ProductID,
				ProductName:    item.ProductName,
				ProductImage:   item.ProductImage,
				Quantity:       item.Quantity,
				PricePerUnit:   item.PricePerUnit,
				DiscountAmount: item.DiscountAmount,
				TotalPrice:     item.TotalPrice,
				Status:         models.OrderStatusNew,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}

			if !seenShops[item.ShopID] {
				seenShops[item.ShopID] = true
				shopIDs = append(shopIDs, item.ShopID)
			}
		}

		// One notification per distinct shop owner touched by the order.
		for _, shopID := range shopIDs {
			var shop models.Shop
			if err := tx.First(&shop, "id = ?", shopID).Error; err != nil {
				return err
			}
			notification := models.Notification{
				UserID:  shop.OwnerID,
				Message: "New order #" + order.OrderNumber + " has been received.",
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
			notifications = append(notifications, notification)
		}

		// The cart dies with the same commit as the order it became.
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
	if err != nil {
		return nil, nil, err
	}

	if err := db.Preload("Details").Preload("ShippingAddress").First(&order, order.ID).Error; err != nil {
		return nil, nil, err
	}
	return &order, notifications, nil
}
