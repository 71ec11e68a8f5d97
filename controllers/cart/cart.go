package cartControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	ShopID    uint `json:"shop_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

var hundred = decimal.NewFromInt(100)

// priceLine freezes the pricing of one cart line from the product's
// current price and discount:
//
//	pricePerUnit   = full price, before discount
//	discountAmount = pricePerUnit * discount% / 100 * qty
//	totalPrice     = (pricePerUnit - per-unit discount) * qty
func priceLine(product *models.Product, quantity int) (pricePerUnit, discountAmount, totalPrice decimal.Decimal) {
	qty := decimal.NewFromInt(int64(quantity))
	pricePerUnit = product.PricePerItem
	unitDiscount := pricePerUnit.Mul(product.DiscountPercentage).Div(hundred)
	discountAmount = unitDiscount.Mul(qty)
	totalPrice = pricePerUnit.Sub(unitDiscount).Mul(qty)
	return pricePerUnit, discountAmount, totalPrice
}

// AddOrUpdateItem puts (productID, shopID) into the user's cart at the
// requested quantity. An existing line has its quantity overwritten and
// is repriced from the product's current price; the cart row itself is
// created lazily on first add. Rejections leave the cart untouched.
func AddOrUpdateItem(db *gorm.DB, cfg *config.Config, userID string, input CartItemInput) (*models.Cart, error) {
	if input.Quantity <= 0 {
		return nil, response.NewError(response.KindValidation, "Invalid Quantity", "Quantity must be greater than zero")
	}

	var cart models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(response.KindNotFound, "Product Not Found", "The product does not exist")
			}
			return err
		}
		if product.ShopID != input.ShopID {
			return response.NewError(response.KindValidation, "Invalid Shop", "The product does not belong to this shop")
		}
		if input.Quantity > product.StockQuantity {
			return response.NewError(response.KindValidation, "Insufficient Stock", "Requested quantity exceeds available stock")
		}

		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		}

		pricePerUnit, discountAmount, totalPrice := priceLine(&product, input.Quantity)

		var item models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ? AND shop_id = ?",
			cart.ID, input.ProductID, input.ShopID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:         cart.ID,
				ProductID:      product.ID,
				ShopID:         product.ShopID,
				ProductName:    product.Name,
				ProductImage:   product.Image,
				Quantity:       input.Quantity,
				PricePerUnit:   pricePerUnit,
				DiscountAmount: discountAmount,
				TotalPrice:     totalPrice,
				AddedAt:        time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity = input.Quantity
			item.PricePerUnit = pricePerUnit
			item.DiscountAmount = discountAmount
			item.TotalPrice = totalPrice
			item.AddedAt = time.Now()
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		return RecomputeTotals(tx, &cart, cfg)
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items").First(&cart, cart.ID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveItem deletes one line. Removing the last line hard-deletes the
// cart row; no empty cart is ever persisted, and the returned cart is
// nil in that case.
func RemoveItem(db *gorm.DB, cfg *config.Config, userID string, productID uint) (*models.Cart, error) {
	var cart models.Cart
	deleted := false

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewError(response.KindNotFound, "Cart Not Found", "No cart exists for this user")
			}
			return err
		}

		result := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.NewError(response.KindNotFound, "Cart Item Not Found", "The product is not in the cart")
		}

		var remaining int64
		if err := tx.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			deleted = true
			return tx.Delete(&cart).Error
		}

		return RecomputeTotals(tx, &cart, cfg)
	})
	if err != nil {
		return nil, err
	}
	if deleted {
		return nil, nil
	}

	if err := db.Preload("Items").First(&cart, cart.ID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// ClearCart discards the user's cart entirely.
func ClearCart(db *gorm.DB, userID string) error {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(response.KindNotFound, "Cart Not Found", "No cart exists for this user")
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}

// RecomputeTotals rewrites the cart's cached aggregates from its items:
//
//	ItemsTotal    = sum(pricePerUnit * quantity)
//	TotalDiscount = sum(discountAmount)
//	Tax           = sum(totalPrice) * tax rate, the discounted amount
//	TotalAmount   = sum(totalPrice) + Tax + ShippingCost
//
// Checkout charges tax on the same discounted base, so the cart total
// always matches the amount the order will charge.
func RecomputeTotals(tx *gorm.DB, cart *models.Cart, cfg *config.Config) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return err
	}

	itemsTotal := decimal.Zero
	totalDiscount := decimal.Zero
	lineSum := decimal.Zero
	for _, item := range items {
		itemsTotal = itemsTotal.Add(item.PricePerUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
		totalDiscount = totalDiscount.Add(item.DiscountAmount)
		lineSum = lineSum.Add(item.TotalPrice)
	}

	cart.ItemsTotal = itemsTotal
	cart.TotalDiscount = totalDiscount
	cart.Tax = lineSum.Mul(cfg.TaxRate).Round(2)
	cart.ShippingCost = cfg.ShippingCost
	cart.TotalAmount = lineSum.Add(cart.Tax).Add(cart.ShippingCost)

	return tx.Model(cart).Select("items_total", "total_discount", "tax", "shipping_cost", "total_amount").
		Updates(map[string]interface{}{
			"items_total":    cart.ItemsTotal,
			"total_discount": cart.TotalDiscount,
			"tax":            cart.Tax,
			"shipping_cost":  cart.ShippingCost,
			"total_amount":   cart.TotalAmount,
		}).Error
}

// MergeGuestCart folds a guest cart into the user's cart after login or
// registration. Lines are repriced from current product data; quantities
// are clamped to stock, and products that vanished are dropped. Returns
// false when there was nothing to merge.
func MergeGuestCart(db *gorm.DB, cfg *config.Config, guestID, userID string) (bool, error) {
	var guestCart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", guestID).First(&guestCart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if len(guestCart.Items) == 0 {
		_ = db.Delete(&guestCart).Error
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var userCart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&userCart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			userCart = models.Cart{UserID: userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		}

		for _, guestItem := range guestCart.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", guestItem.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			quantity := guestItem.Quantity
			var existing models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ? AND shop_id = ?",
				userCart.ID, guestItem.ProductID, guestItem.ShopID).First(&existing).Error
			if err == nil {
				quantity += existing.Quantity
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if quantity > product.StockQuantity {
				quantity = product.StockQuantity
			}
			if quantity <= 0 {
				continue
			}

			pricePerUnit, discountAmount, totalPrice := priceLine(&product, quantity)
			if existing.ID != 0 {
				existing.Quantity = quantity
				existing.PricePerUnit = pricePerUnit
				existing.DiscountAmount = discountAmount
				existing.TotalPrice = totalPrice
				existing.AddedAt = time.Now()
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			} else {
				item := models.CartItem{
					CartID:         userCart.ID,
					ProductID:      product.ID,
					ShopID:         product.ShopID,
					ProductName:    product.Name,
					ProductImage:   product.Image,
					Quantity:       quantity,
					PricePerUnit:   pricePerUnit,
					DiscountAmount: discountAmount,
					TotalPrice:     totalPrice,
					AddedAt:        time.Now(),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Where("cart_id = ?", guestCart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&guestCart).Error; err != nil {
			return err
		}

		return RecomputeTotals(tx, &userCart, cfg)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
