package adminController

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type AdminStatusInput struct {
	AdminStatus string `json:"admin_status" binding:"required"`
}

// UpdateShopAdminStatus moves a shop between moderation states. The
// transition is unconditional: any known status can be set as long as
// the shop exists.
func UpdateShopAdminStatus(db *gorm.DB, shopID uint, status string) (*models.Shop, error) {
	adminStatus := models.ShopAdminStatus(strings.ToLower(status))
	switch adminStatus {
	case models.ShopAdminPending, models.ShopAdminActive, models.ShopAdminInactive:
	default:
		return nil, response.NewError(response.KindValidation, "Invalid Status",
			"Admin status must be pending, active or inactive")
	}

	var shop models.Shop
	if err := db.First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(response.KindNotFound, "Shop Not Found", "The shop does not exist")
		}
		return nil, err
	}

	if err := db.Model(&shop).Update("admin_status", adminStatus).Error; err != nil {
		return nil, err
	}
	shop.AdminStatus = adminStatus
	return &shop, nil
}

// GET /admin/shops?status=pending
func ListShops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if status := c.Query("status"); status != "" {
			query = query.Where("admin_status = ?", strings.ToLower(status))
		}

		var shops []models.Shop
		if err := query.Find(&shops).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Shops retrieved", shops)
	}
}

// PUT /admin/shops/:id/status
func UpdateShopStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "id must be numeric")
			return
		}

		var input AdminStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		shop, err := UpdateShopAdminStatus(db, uint(id), input.AdminStatus)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Shop status updated", shop)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "phone", "is_admin", "is_seller", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Users retrieved", users)
	}
}
