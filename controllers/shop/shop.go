package shopControllers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/config"
	reviewControllers "github.com/diaandrei/Flexiro-sub000/controllers/review"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type SellerStatusInput struct {
	SellerStatus string `json:"seller_status"`
	OpeningDay   string `json:"opening_day"`
	ClosingDay   string `json:"closing_day"`
	OpeningTime  string `json:"opening_time"`
	ClosingTime  string `json:"closing_time"`
}

// UpdateSellerStatus applies a field-by-field partial update: only
// non-empty incoming values touch the shop, everything else keeps its
// stored value.
func UpdateSellerStatus(db *gorm.DB, userID string, input SellerStatusInput) (*models.Shop, error) {
	var shop models.Shop
	if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(response.KindNotFound, "Shop Not Found", "No shop exists for this seller")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.SellerStatus != "" {
		status := models.ShopSellerStatus(strings.ToLower(input.SellerStatus))
		if status != models.ShopSellerOpen && status != models.ShopSellerClosed {
			return nil, response.NewError(response.KindValidation, "Invalid Status", "Seller status must be open or closed")
		}
		updates["seller_status"] = status
	}
	if input.OpeningDay != "" {
		updates["opening_day"] = input.OpeningDay
	}
	if input.ClosingDay != "" {
		updates["closing_day"] = input.ClosingDay
	}
	if input.OpeningTime != "" {
		updates["opening_time"] = input.OpeningTime
	}
	if input.ClosingTime != "" {
		updates["closing_time"] = input.ClosingTime
	}

	if len(updates) > 0 {
		if err := db.Model(&shop).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := db.First(&shop, shop.ID).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// GET /seller/shop
func GetMyShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var shop models.Shop
		if err := db.Preload("Products").Where("owner_id = ?", userID).First(&shop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Shop Not Found", "No shop exists for this seller")
				return
			}
			response.FromError(c, err)
			return
		}

		response.OK(c, "Shop retrieved", shop)
	}
}

// PUT /seller/shop takes a multipart form: name, description, optional
// logo file.
func UpdateMyShop(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
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

		updates := make(map[string]interface{})
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if description := c.PostForm("description"); description != "" {
			updates["description"] = description
		}

		if fileHeader, err := c.FormFile("logo"); err == nil {
			fileName := fmt.Sprintf("%d_%s", time.Now().Unix(),
				strings.ReplaceAll(fileHeader.Filename, " ", "_"))
			savePath := filepath.Join(cfg.UploadDir, "shops", fileName)
			if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
				response.FromError(c, err)
				return
			}
			updates["logo"] = "/uploads/shops/" + fileName
		}

		if len(updates) > 0 {
			if err := db.Model(&shop).Updates(updates).Error; err != nil {
				response.FromError(c, err)
				return
			}
		}

		response.OK(c, "Shop updated", shop)
	}
}

// PUT /seller/shop/status
func UpdateSellerStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input SellerStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		shop, err := UpdateSellerStatus(db, userID, input)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Shop status updated", shop)
	}
}

// GET /shops lists shops approved by an admin.
func ListShops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shops []models.Shop
		if err := db.Where("admin_status = ?", models.ShopAdminActive).
			Order("created_at DESC").Find(&shops).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Shops retrieved", shops)
	}
}

// GET /shops/:id
func GetShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "id must be numeric")
			return
		}

		var shop models.Shop
		if err := db.Preload("Products", "status = ?", models.ProductStatusForSell).
			Where("id = ? AND admin_status = ?", id, models.ShopAdminActive).
			First(&shop).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Shop Not Found", "The shop does not exist or is not active")
				return
			}
			response.FromError(c, err)
			return
		}

		average, err := reviewControllers.ShopAverageRating(db, shop.ID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Shop retrieved", gin.H{
			"shop":           shop,
			"average_rating": average,
		})
	}
}
