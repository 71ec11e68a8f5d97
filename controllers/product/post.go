package productcontroller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/config"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// sellerShop resolves the authenticated seller's shop.
func sellerShop(db *gorm.DB, userID string) (*models.Shop, error) {
	var shop models.Shop
	if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(response.KindNotFound, "Shop Not Found", "No shop exists for this seller")
		}
		return nil, err
	}
	return &shop, nil
}

func saveProductImage(c *gin.Context, cfg *config.Config, fileHeader *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(fileHeader.Filename)
	base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")

	fileName := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	savePath := filepath.Join(cfg.UploadDir, "products", fileName)
	if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
		return "", err
	}
	return "/uploads/products/" + fileName, nil
}

func parseDiscount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	discount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, errors.New("discount must be between 0 and 100")
	}
	return discount, nil
}

// POST /seller/products takes a multipart form with an optional image file.
func CreateProduct(db *gorm.DB, cfg *config.Config, catalog cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		shop, err := sellerShop(db, userID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		name := c.PostForm("name")
		priceStr := c.PostForm("price_per_item")
		if name == "" || priceStr == "" {
			response.Fail(c, response.KindValidation, "Invalid input", "name and price_per_item are required")
			return
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			response.Fail(c, response.KindValidation, "Invalid input", "Invalid price_per_item")
			return
		}
		discount, err := parseDiscount(c.PostForm("discount_percentage"))
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Invalid discount_percentage")
			return
		}

		stock := 0
		if stockStr := c.PostForm("stock_quantity"); stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil || stock < 0 {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid stock_quantity")
				return
			}
		}

		var categoryID uint
		if categoryStr := c.PostForm("category_id"); categoryStr != "" {
			id64, err := strconv.ParseUint(categoryStr, 10, 64)
			if err != nil {
				response.Fail(c, response.KindValidation, "Invalid input", "Invalid category_id")
				return
			}
			categoryID = uint(id64)
		}

		status := models.ProductStatusDraft
		if c.PostForm("status") == string(models.ProductStatusForSell) {
			status = models.ProductStatusForSell
		}

		var image string
		if fileHeader, err := c.FormFile("image"); err == nil {
			if image, err = saveProductImage(c, cfg, fileHeader); err != nil {
				response.FromError(c, err)
				return
			}
		}

		product := models.Product{
			ShopID:             shop.ID,
			CategoryID:         categoryID,
			Name:               name,
			Description:        c.PostForm("description"),
			Image:              image,
			PricePerItem:       price,
			DiscountPercentage: discount,
			StockQuantity:      stock,
			Status:             status,
			Availability:       models.AvailabilityForSale,
		}
		if err := db.Create(&product).Error; err != nil {
			response.FromError(c, err)
			return
		}

		invalidateCatalog(c.Request.Context(), catalog)
		response.Created(c, "Product created", product)
	}
}
