package addressControllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/middleware"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type AddressInput struct {
	FullName         string `json:"full_name"`
	Address          string `json:"address" binding:"required"`
	City             string `json:"city" binding:"required"`
	Postcode         string `json:"postcode" binding:"required"`
	Country          string `json:"country" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	AddToAddressBook bool   `json:"add_to_address_book"`
}

// FindOrCreate resolves an address for a user. An exact match on
// (Address, Postcode, City, Country, PhoneNumber) is reused, flipping
// its AddToAddressBook flag if the request differs; otherwise a new row
// is created honoring the requested flag.
func FindOrCreate(tx *gorm.DB, userID string, input AddressInput) (*models.ShippingAddress, error) {
	var address models.ShippingAddress
	err := tx.Where(
		"user_id = ? AND address = ? AND postcode = ? AND city = ? AND country = ? AND phone_number = ?",
		userID, input.Address, input.Postcode, input.City, input.Country, input.PhoneNumber,
	).First(&address).Error

	switch {
	case err == nil:
		if address.AddToAddressBook != input.AddToAddressBook {
			if err := tx.Model(&address).Update("add_to_address_book", input.AddToAddressBook).Error; err != nil {
				return nil, err
			}
			address.AddToAddressBook = input.AddToAddressBook
		}
		return &address, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		address = models.ShippingAddress{
			UserID:           userID,
			FullName:         input.FullName,
			Address:          input.Address,
			City:             input.City,
			Postcode:         input.Postcode,
			Country:          input.Country,
			PhoneNumber:      input.PhoneNumber,
			AddToAddressBook: input.AddToAddressBook,
		}
		if err := tx.Create(&address).Error; err != nil {
			return nil, err
		}
		return &address, nil
	default:
		return nil, err
	}
}

// GET /customer/addresses
func ListAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var addresses []models.ShippingAddress
		if err := db.Where("user_id = ? AND add_to_address_book = ?", userID, true).
			Order("created_at DESC").Find(&addresses).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Addresses retrieved", addresses)
	}
}

// POST /customer/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}
		input.AddToAddressBook = true

		address, err := FindOrCreate(db, userID, input)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.Created(c, "Address saved", address)
	}
}

// PUT /customer/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "id must be numeric")
			return
		}

		var address models.ShippingAddress
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindNotFound, "Address Not Found", "No such address for this user")
				return
			}
			response.FromError(c, err)
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		address.FullName = input.FullName
		address.Address = input.Address
		address.City = input.City
		address.Postcode = input.Postcode
		address.Country = input.Country
		address.PhoneNumber = input.PhoneNumber
		if err := db.Save(&address).Error; err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Address updated", address)
	}
}

// DELETE /customer/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", "id must be numeric")
			return
		}

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ShippingAddress{})
		if result.Error != nil {
			response.FromError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			response.Fail(c, response.KindNotFound, "Address Not Found", "No such address for this user")
			return
		}

		response.OK(c, "Address deleted", nil)
	}
}
