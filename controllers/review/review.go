package reviewControllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

const (
	NoProductRatings = "No ratings available for this product."
	NoShopRatings    = "No ratings available for this shop."
)

type ReviewInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// AddOrUpdateReview upserts the single review a user may hold on a
// product: a second submission overwrites rating and comment instead of
// inserting a new row.
func AddOrUpdateReview(db *gorm.DB, userID string, input ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, response.NewError(response.KindValidation, "Invalid Rating", "Rating must be between 1 and 5")
	}

	var product models.Product
	if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(response.KindNotFound, "Product Not Found", "The product does not exist")
		}
		return nil, err
	}

	var review models.Review
	err := db.Where("product_id = ? AND user_id = ?", input.ProductID, userID).First(&review).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{
			ProductID: input.ProductID,
			UserID:    userID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := db.Save(&review).Error; err != nil {
			return nil, err
		}
	}

	return &review, nil
}

// ProductAverageRating returns the mean rating formatted to two
// decimals, or the sentinel string when the product has no reviews.
func ProductAverageRating(db *gorm.DB, productID uint) (string, error) {
	var ratings []int
	if err := db.Model(&models.Review{}).Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error; err != nil {
		return "", err
	}
	if len(ratings) == 0 {
		return NoProductRatings, nil
	}
	return formatAverage(ratings), nil
}

// ShopAverageRating averages every review across the shop's products.
func ShopAverageRating(db *gorm.DB, shopID uint) (string, error) {
	var ratings []int
	if err := db.Model(&models.Review{}).
		Joins("JOIN products ON products.id = reviews.product_id").
		Where("products.shop_id = ?", shopID).
		Pluck("reviews.rating", &ratings).Error; err != nil {
		return "", err
	}
	if len(ratings) == 0 {
		return NoShopRatings, nil
	}
	return formatAverage(ratings), nil
}

func formatAverage(ratings []int) string {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(len(ratings)))
}

// POST /customer/reviews
func AddOrUpdateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		review, err := AddOrUpdateReview(db, userID, input)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Review saved", review)
	}
}

// GET /products/:id/reviews
func GetProductReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "id must be numeric")
			return
		}

		var reviews []models.Review
		if err := db.Where("product_id = ?", productID).
			Order("created_at DESC").Find(&reviews).Error; err != nil {
			response.FromError(c, err)
			return
		}

		average, err := ProductAverageRating(db, uint(productID))
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Reviews retrieved", gin.H{
			"reviews":        reviews,
			"average_rating": average,
		})
	}
}
