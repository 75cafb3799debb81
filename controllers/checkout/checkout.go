package checkoutControllers

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/gateway"
	"github.com/meetchovatiya27/ecommarce-website/models"
	"github.com/meetchovatiya27/ecommarce-website/pkg/logger"
)

type DeliveryInfo struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

func (d DeliveryInfo) validate() error {
	for _, f := range []string{d.Name, d.Mobile, d.City, d.Address, d.Pincode} {
		if strings.TrimSpace(f) == "" {
			return ErrValidation
		}
	}
	return nil
}

// newOrderNumber draws 12 hex characters from a fresh UUID. The unique index
// on order_number backs it; no regenerate-and-retry loop.
func newOrderNumber() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:6]))
}

// minorUnits converts a decimal amount to the gateway's integer minor-unit
// format (rupees -> paise).
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}

// BeginCheckout runs the submission half of the checkout pipeline: validate
// the cart and delivery form, create the remote payment order, then persist
// the Order and its line snapshots in one transaction. A gateway failure
// leaves no local writes behind.
func BeginCheckout(ctx context.Context, db *gorm.DB, gw *gateway.Client, currency, userID string, info DeliveryInfo) (*models.Order, error) {
	if err := info.validate(); err != nil {
		return nil, err
	}

	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(cart.Items) == 0) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}

	// Amount is fixed at this instant; later product edits must not move it.
	amount := cart.Total()
	orderNumber := newOrderNumber()

	gatewayOrderID, err := gw.CreateOrder(ctx, minorUnits(amount), currency, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	order := models.Order{
		UserID:         userID,
		OrderNumber:    orderNumber,
		Name:           info.Name,
		Mobile:         info.Mobile,
		City:           info.City,
		Address:        info.Address,
		Pincode:        info.Pincode,
		GatewayOrderID: gatewayOrderID,
		Amount:         amount,
		Status:         models.OrderStatusPending,
		CreatedAt:      time.Now(),
	}
	for _, item := range cart.Items {
		productID := item.ProductID
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   &productID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		})
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, err
	}

	logger.Info("checkout submitted",
		"order_number", order.OrderNumber,
		"user_id", userID,
		"amount", amount.String(),
		"gateway_order_id", gatewayOrderID,
	)
	return &order, nil
}

// POST /checkout
func CheckoutHandler(db *gorm.DB, gw *gateway.Client, currency string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var info DeliveryInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := BeginCheckout(c.Request.Context(), db, gw, currency, userID, info)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ErrGateway):
				logger.Error("gateway order creation failed", "user_id", userID, "error", err.Error())
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}

		// Payment context for the client-side gateway widget.
		c.JSON(http.StatusOK, gin.H{
			"order_id":         order.ID,
			"order_number":     order.OrderNumber,
			"gateway_order_id": order.GatewayOrderID,
			"amount":           minorUnits(order.Amount),
			"currency":         currency,
			"key_id":           gw.KeyID(),
		})
	}
}
