package productcontroller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			response.FromError(c, err)
			return
		}
		if count > 0 {
			response.Fail(c, response.KindConflict, "Category Exists", "A category with this name already exists")
			return
		}

		category := models.Category{Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.Created(c, "Category created", category)
	}
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Categories retrieved", categories)
	}
}

// PUT /admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Invalid category ID")
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Category Not Found", "The category does not exist")
				return
			}
			response.FromError(c, err)
			return
		}

		if err := db.Model(&category).Update("name", input.Name).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Category updated", category)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "Invalid category ID")
			return
		}

		result := db.Delete(&models.Category{}, id)
		if result.Error != nil {
			response.FromError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, response.KindNotFound, "Category Not Found", "The category does not exist")
			return
		}

		response.OK(c, "Category deleted", nil)
	}
}
