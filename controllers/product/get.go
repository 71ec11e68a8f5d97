package productcontroller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/diaandrei/Flexiro-sub000/controllers/review"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.Preload("Category").Preload("Shop").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Product Not Found", "The product does not exist")
				return
			}
			response.FromError(c, err)
			return
		}

		average, err := reviewControllers.ProductAverageRating(db, product.ID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Product retrieved", gin.H{
			"product":        product,
			"average_rating": average,
		})
	}
}
