package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/gateway"
	"github.com/meetchovatiya27/ecommarce-website/models"
	"github.com/meetchovatiya27/ecommarce-website/pkg/logger"

	cartControllers "github.com/meetchovatiya27/ecommarce-website/controllers/cart"
	orderControllers "github.com/meetchovatiya27/ecommarce-website/controllers/order"
)

// CallbackPayload is what the gateway posts back after the customer pays.
// Razorpay sends form fields; the client widget relays JSON, so both tags.
type CallbackPayload struct {
	GatewayOrderID   string `form:"razorpay_order_id" json:"razorpay_order_id"`
	GatewayPaymentID string `form:"razorpay_payment_id" json:"razorpay_payment_id"`
	GatewaySignature string `form:"razorpay_signature" json:"razorpay_signature"`
}

// ConfirmPayment runs the callback half of the pipeline: verify the payload
// and signature, then in one transaction flip the order to Paid, write the
// purchase history rows, and destroy the originating cart. Any verification
// failure leaves the order exactly as it was.
func ConfirmPayment(db *gorm.DB, gw *gateway.Client, payload CallbackPayload) (*models.Order, error) {
	if payload.GatewayOrderID == "" || payload.GatewayPaymentID == "" || payload.GatewaySignature == "" {
		return nil, ErrInvalidCallback
	}

	var order models.Order
	err := db.Preload("Items").Where("gateway_order_id = ?", payload.GatewayOrderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	// Status transitions are one-way out of Pending. A replayed success
	// callback must not rewrite the order or duplicate history rows.
	if order.Status != models.OrderStatusPending {
		return &order, nil
	}

	if !gw.VerifySignature(payload.GatewayOrderID, payload.GatewayPaymentID, payload.GatewaySignature) {
		return nil, ErrSignatureMismatch
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":             models.OrderStatusPaid,
			"gateway_payment_id": payload.GatewayPaymentID,
			"gateway_signature":  payload.GatewaySignature,
		}).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, item := range order.Items {
			history := models.UserPurchaseHistory{
				UserID:      order.UserID,
				ProductID:   item.ProductID,
				OrderID:     order.ID,
				Quantity:    item.Quantity,
				PurchasedAt: now,
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}

		var cart models.Cart
		err := tx.Where("user_id = ?", order.UserID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // cart already gone, nothing to clear
		}
		if err != nil {
			return err
		}
		return cartControllers.DeleteCart(tx, cart.CartID)
	})
	if err != nil {
		return nil, fmt.Errorf("payment confirmation failed: %w", err)
	}

	order.Status = models.OrderStatusPaid
	order.GatewayPaymentID = payload.GatewayPaymentID
	order.GatewaySignature = payload.GatewaySignature

	logger.Info("payment confirmed",
		"order_number", order.OrderNumber,
		"gateway_payment_id", payload.GatewayPaymentID,
	)
	return &order, nil
}

// POST /payment/verify
//
// Unauthenticated: the gateway posts cross-origin with no session. The
// signature check is the only integrity gate, so every failure branch lands
// on the failure page and leaves the order untouched.
func VerifyPaymentHandler(db *gorm.DB, gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload CallbackPayload
		if err := c.ShouldBind(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse callback", "redirect": "/payment/failed"})
			return
		}

		order, err := ConfirmPayment(db, gw, payload)
		if err != nil {
			status := http.StatusBadRequest
			switch {
			case errors.Is(err, ErrOrderNotFound):
				status = http.StatusNotFound
			case errors.Is(err, ErrSignatureMismatch):
				status = http.StatusForbidden
			case errors.Is(err, ErrInvalidCallback):
				status = http.StatusBadRequest
			default:
				status = http.StatusInternalServerError
				logger.Error("payment verification failed", "error", err.Error())
			}
			c.JSON(status, gin.H{"error": err.Error(), "redirect": "/payment/failed"})
			return
		}

		orderControllers.BroadcastOrder(*order)

		c.JSON(http.StatusOK, gin.H{
			"status":   order.Status,
			"redirect": fmt.Sprintf("/payment/success/%d", order.ID),
		})
	}
}
