package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// GET /seller/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		shop, err := sellerShop(db, userID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		var products []models.Product
		if err := db.Where("shop_id = ?", shop.ID).Find(&products).Error; err != nil {
			response.FromError(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			response.FromError(c, err)
			return
		}

		headers := []string{
			"ID", "Name", "Description", "PricePerItem", "DiscountPercentage",
			"StockQuantity", "CategoryID", "Image", "Status", "Availability",
			"CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.PricePerItem.String())
			row.AddCell().SetValue(p.DiscountPercentage.String())
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(string(p.Status))
			row.AddCell().SetValue(string(p.Availability))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.Status(http.StatusInternalServerError)
		}
	}
}
