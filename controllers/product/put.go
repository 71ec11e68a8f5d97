package productcontroller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// PUT /seller/products/:id is a partial update; empty form fields keep
// their stored values. Accepts an optional replacement image.
func UpdateProduct(db *gorm.DB, cfg *config.Config, catalog cache.Cache) gin.HandlerFunc {
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

		var product models.Product
		if err := db.Where("id = ? AND shop_id = ?", id, shop.ID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Product Not Found", "No such product in this shop")
				return
			}
			response.FromError(c, err)
			return
		}

		updates := make(map[string]interface{})
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if description := c.PostForm("description"); description != "" {
			updates["description"] = description
		}
		if priceStr := c.PostForm("price_per_item"); priceStr != "" {
			price, err := decimal.NewFromString(priceStr)
			if err != nil || price.IsNegative() {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid price_per_item")
				return
			}
			updates["price_per_item"] = price
		}
		if discountStr := c.PostForm("discount_percentage"); discountStr != "" {
			discount, err := parseDiscount(discountStr)
			if err != nil {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid discount_percentage")
				return
			}
			updates["discount_percentage"] = discount
		}
		if stockStr := c.PostForm("stock_quantity"); stockStr != "" {
			stock, err := strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid stock_quantity")
				return
			}
			updates["stock_quantity"] = stock
			// Restock of a sold-out product makes it purchasable again.
			if stock > 0 && product.Status == models.ProductStatusSoldOut {
				updates["status"] = models.ProductStatusForSell
			}
		}
		if statusStr := c.PostForm("status"); statusStr != "" {
			status := models.ProductStatus(statusStr)
			switch status {
			case models.ProductStatusDraft, models.ProductStatusForSell, models.ProductStatusSoldOut:
				updates["status"] = status
			default:
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid status")
				return
			}
		}
		if availabilityStr := c.PostForm("availability"); availabilityStr != "" {
			availability := models.ProductAvailability(availabilityStr)
			switch availability {
			case models.AvailabilityForSale, models.AvailabilityNotForSale:
				updates["availability"] = availability
			default:
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid availability")
				return
			}
		}
		if categoryStr := c.PostForm("category_id"); categoryStr != "" {
			categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
			if err != nil {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid category_id")
				return
			}
			updates["category_id"] = uint(categoryID)
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			image, err := saveProductImage(c, cfg, fileHeader)
			if err != nil {
				response.FromError(c, err)
				return
			}
			updates["image"] = image
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				response.FromError(c, err)
				return
			}
		}

		if err := db.First(&product, product.ID).Error; err != nil {
			response.FromError(c, err)
			return
		}

		invalidateCatalog(c.Request.Context(), catalog)
		response.OK(c, "Product updated", product)
	}
}
