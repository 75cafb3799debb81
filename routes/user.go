package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	checkoutControllers "github.com/meetchovatiya27/ecommarce-website/controllers/checkout"
	orderControllers "github.com/meetchovatiya27/ecommarce-website/controllers/order"
	userControllers "github.com/meetchovatiya27/ecommarce-website/controllers/user"
	"github.com/meetchovatiya27/ecommarce-website/gateway"
	"github.com/meetchovatiya27/ecommarce-website/middleware"
)

// SetupUserRoutes registers the JWT-protected endpoints: checkout, orders,
// purchase history, and the profile.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, gw *gateway.Client, cfg *config.Config) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		userGroup.POST("/checkout", checkoutControllers.CheckoutHandler(db, gw, cfg.Gateway.Currency))

		userGroup.GET("/orders", orderControllers.GetUserOrders(db))
		userGroup.GET("/orders/history", orderControllers.GetPurchaseHistory(db))
		userGroup.GET("/orders/:order_number", orderControllers.GetOrderByNumber(db))

		userGroup.GET("/payment/success/:order_id", orderControllers.PaymentSuccess(db))

		userGroup.GET("/user/profile", userControllers.GetProfile(db))
	}
}
