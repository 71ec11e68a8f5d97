package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/config"
	notificationControllers "github.com/diaandrei/Flexiro-sub000/controllers/notification"
	paymentControllers "github.com/diaandrei/Flexiro-sub000/controllers/payment"
)

// Deps bundles the shared dependencies handed to every route group.
type Deps struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Catalog cache.Cache
	Hub     *notificationControllers.Hub
	Gateway *paymentControllers.GatewayClient
	Log     zerolog.Logger
}

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth and browse routes (no middleware)
	SetupAuthRoutes(r, deps)
	SetupPublicRoutes(r, deps)

	// JWT-protected groups
	SetupCustomerRoutes(r, deps)
	SetupSellerRoutes(r, deps)
	SetupAdminRoutes(r, deps)
	SetupPaymentRoutes(r, deps)
	SetupNotificationRoutes(r, deps)
}
