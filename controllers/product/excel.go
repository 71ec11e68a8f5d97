package productcontroller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// POST /seller/products/import-excel
// Columns: ID, Name, Description, PricePerItem, DiscountPercentage,
// StockQuantity, CategoryID, Image. A row with an ID updates the
// matching product; without one it creates a new draft.
func ImportProductsFromExcel(db *gorm.DB, catalog cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		shop, err := sellerShop(db, userID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Excel file is required")
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			response.FromError(c, err)
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Failed to parse Excel file")
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			response.Fail(c, response.KindValidation, "Invalid input", "Excel file is empty or missing header row")
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := decimal.NewFromString(get(3))
			discount, discountErr := parseDiscount(get(4))
			stock, _ := strconv.Atoi(get(5))
			categoryID, _ := strconv.Atoi(get(6))
			image := get(7)

			if name == "" || priceErr != nil || discountErr != nil || price.IsNegative() {
				skippedCount++
				continue
			}

			if idStr != "" {
				id, err := strconv.Atoi(idStr)
				if err != nil {
					skippedCount++
					continue
				}
				var existing models.Product
				if err := db.Where("id = ? AND shop_id = ?", id, shop.ID).First(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				existing.Name = name
				existing.Description = description
				existing.PricePerItem = price
				existing.DiscountPercentage = discount
				existing.StockQuantity = stock
				existing.CategoryID = uint(categoryID)
				if image != "" {
					existing.Image = image
				}
				if err := db.Save(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			product := models.Product{
				ShopID:             shop.ID,
				CategoryID:         uint(categoryID),
				Name:               name,
				Description:        description,
				Image:              image,
				PricePerItem:       price,
				DiscountPercentage: discount,
				StockQuantity:      stock,
				Status:             models.ProductStatusDraft,
				Availability:       models.AvailabilityForSale,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		invalidateCatalog(c.Request.Context(), catalog)
		response.OK(c, "Import completed", gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
