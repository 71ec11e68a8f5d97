package productcontroller

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

const catalogCacheTTL = 5 * time.Minute

// GetProducts lists purchasable products with filtering and sorting.
// The serialized result is cached per query string; any product
// mutation invalidates the whole catalog prefix.
func GetProducts(db *gorm.DB, catalog cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheKey := "products:" + c.Request.URL.RawQuery
		if cached, err := catalog.Get(c.Request.Context(), cacheKey); err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cached), &products) == nil {
				response.OK(c, "Products retrieved", products)
				return
			}
		}

		search := c.Query("search")
		categoryID := c.Query("category_id")
		shopID := c.Query("shop_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		switch sortBy {
		case "created_at", "price_per_item", "name", "stock_quantity":
		default:
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{}).
			Where("status = ? AND availability = ?", models.ProductStatusForSell, models.AvailabilityForSale)

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name LIKE ? OR description LIKE ?", likePattern, likePattern)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price_per_item >= ?", mp)
			} else {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid min_price")
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price_per_item <= ?", mp)
			} else {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid max_price")
				return
			}
		}
		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid category_id")
				return
			}
		}
		if shopID != "" {
			if sid, err := strconv.ParseUint(shopID, 10, 64); err == nil {
				query = query.Where("shop_id = ?", uint(sid))
			} else {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid shop_id")
				return
			}
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			response.FromError(c, err)
			return
		}

		if data, err := json.Marshal(products); err == nil {
			_ = catalog.Set(c.Request.Context(), cacheKey, string(data), catalogCacheTTL)
		}

		response.OK(c, "Products retrieved", products)
	}
}

func invalidateCatalog(ctx context.Context, catalog cache.Cache) {
	_ = catalog.DeletePattern(ctx, "products:*")
}
