package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/config"
	cartControllers "github.com/diaandrei/Flexiro-sub000/controllers/cart"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/response"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	GuestID  string `json:"guest_id"`
}

type RegisterSellerInput struct {
	RegisterInput
	ShopName        string `json:"shop_name" binding:"required"`
	ShopDescription string `json:"shop_description"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	GuestID  string `json:"guest_id"`
}

// POST /auth/register
func Register(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		user, err := createUser(db, input, false)
		if err != nil {
			response.FromError(c, err)
			return
		}

		finishLogin(c, db, cfg, user, input.GuestID)
	}
}

// POST /auth/register-seller
func RegisterSeller(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterSellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		var user *models.User
		err := db.Transaction(func(tx *gorm.DB) error {
			var txErr error
			user, txErr = createUser(tx, input.RegisterInput, true)
			if txErr != nil {
				return txErr
			}
			// New shops await admin moderation before going live.
			shop := models.Shop{
				OwnerID:     user.ID,
				Name:        input.ShopName,
				Description: input.ShopDescription,
				AdminStatus: models.ShopAdminPending,
			}
			return tx.Create(&shop).Error
		})
		if err != nil {
			response.FromError(c, err)
			return
		}

		finishLogin(c, db, cfg, user, input.GuestID)
	}
}

// POST /auth/login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Fail(c, response.KindValidation, "Invalid input", err.Error())
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, response.KindUnauthorized, "Invalid credentials", "Email or password is incorrect")
				return
			}
			response.FromError(c, err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
			response.Fail(c, response.KindUnauthorized, "Invalid credentials", "Email or password is incorrect")
			return
		}

		finishLogin(c, db, cfg, &user, input.GuestID)
	}
}

// POST /auth/guest
func CreateGuestUser(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + generateRandomString(16)

		guest := models.GuestUser{
			ID:        guestID,
			ExpiresAt: time.Now().Add(cfg.GuestTTL),
		}
		if err := db.Create(&guest).Error; err != nil {
			response.FromError(c, err)
			return
		}

		token, err := IssueGuestToken(cfg, guestID)
		if err != nil {
			response.FromError(c, err)
			return
		}

		response.OK(c, "Guest session created", gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

func createUser(db *gorm.DB, input RegisterInput, seller bool) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewError(response.KindConflict, "Email already registered", "An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		IsSeller:     seller,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// finishLogin merges any guest cart into the user's cart and responds
// with the signed token.
func finishLogin(c *gin.Context, db *gorm.DB, cfg *config.Config, user *models.User, guestID string) {
	mergeStatus := "no-guest-cart"
	if guestID != "" {
		merged, err := cartControllers.MergeGuestCart(db, cfg, guestID, user.ID)
		switch {
		case err != nil:
			mergeStatus = "merge-failed"
		case merged:
			mergeStatus = "merged"
		default:
			mergeStatus = "guest-cart-empty"
		}
	}

	token, err := IssueToken(cfg, user)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"token":        token,
		"user":         user,
		"merge_status": mergeStatus,
	})
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}
