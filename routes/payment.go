package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/meetchovatiya27/ecommarce-website/controllers/checkout"
	orderControllers "github.com/meetchovatiya27/ecommarce-website/controllers/order"
	"github.com/meetchovatiya27/ecommarce-website/gateway"
)

// SetupPaymentRoutes registers the gateway-facing endpoints. The verify
// callback is unauthenticated by necessity: the gateway posts cross-origin
// with no session, and the signature check is the integrity gate.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, gw *gateway.Client) {
	payment := r.Group("/payment")
	{
		payment.POST("/verify", checkoutControllers.VerifyPaymentHandler(db, gw))
		payment.GET("/failed", orderControllers.PaymentFailed())
	}
}
