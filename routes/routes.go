package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	"github.com/meetchovatiya27/ecommarce-website/gateway"
)

// SetupRoutes is the single entry-point that wires up the public storefront,
// authenticated user, payment, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw *gateway.Client, cfg *config.Config) {
	SetupPublicRoutes(r, db, cfg)
	SetupAuthRoutes(r, db, cfg)
	SetupUserRoutes(r, db, gw, cfg)
	SetupPaymentRoutes(r, db, gw)
	SetupAdminRoutes(r, db, cfg)
}
