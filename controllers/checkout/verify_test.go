package checkoutControllers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/gateway"
	"github.com/meetchovatiya27/ecommarce-website/models"
)

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// checkedOutOrder seeds a cart and runs BeginCheckout, returning the pending
// order ready for callback verification.
func checkedOutOrder(t *testing.T, db *gorm.DB, gw *gateway.Client) *models.Order {
	t.Helper()
	seedCart(t, db, "u1")
	order, err := BeginCheckout(context.Background(), db, gw, "INR", "u1", delivery())
	require.NoError(t, err)
	return order
}

func TestConfirmPaymentHappyPath(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")
	order := checkedOutOrder(t, db, gw)

	payload := CallbackPayload{
		GatewayOrderID:   "order_G1",
		GatewayPaymentID: "pay_P1",
		GatewaySignature: sign("order_G1", "pay_P1"),
	}
	confirmed, err := ConfirmPayment(db, gw, payload)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, confirmed.Status)
	assert.Equal(t, "pay_P1", confirmed.GatewayPaymentID)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusPaid, stored.Status)
	assert.Equal(t, "pay_P1", stored.GatewayPaymentID)

	// One history row per order line.
	var history []models.UserPurchaseHistory
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&history).Error)
	assert.Len(t, history, 2)
	for _, h := range history {
		assert.Equal(t, "u1", h.UserID)
	}

	// The originating cart and its items are gone.
	var carts, cartItems int64
	db.Model(&models.Cart{}).Count(&carts)
	db.Model(&models.CartItem{}).Count(&cartItems)
	assert.EqualValues(t, 0, carts)
	assert.EqualValues(t, 0, cartItems)
}

func TestConfirmPaymentTamperedSignature(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")
	order := checkedOutOrder(t, db, gw)

	payload := CallbackPayload{
		GatewayOrderID:   "order_G1",
		GatewayPaymentID: "pay_P1",
		GatewaySignature: sign("order_G1", "pay_FORGED"),
	}
	_, err := ConfirmPayment(db, gw, payload)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.Status, "order must stay Pending")

	var history int64
	db.Model(&models.UserPurchaseHistory{}).Count(&history)
	assert.EqualValues(t, 0, history, "no history rows on a forged callback")

	var cartItems int64
	db.Model(&models.CartItem{}).Count(&cartItems)
	assert.EqualValues(t, 2, cartItems, "cart must survive a forged callback")
}

func TestConfirmPaymentMissingFields(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")
	checkedOutOrder(t, db, gw)

	cases := []CallbackPayload{
		{GatewayPaymentID: "pay_P1", GatewaySignature: "sig"},
		{GatewayOrderID: "order_G1", GatewaySignature: "sig"},
		{GatewayOrderID: "order_G1", GatewayPaymentID: "pay_P1"},
		{},
	}
	for _, payload := range cases {
		_, err := ConfirmPayment(db, gw, payload)
		assert.ErrorIs(t, err, ErrInvalidCallback)
	}
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")

	payload := CallbackPayload{
		GatewayOrderID:   "order_UNKNOWN",
		GatewayPaymentID: "pay_P1",
		GatewaySignature: sign("order_UNKNOWN", "pay_P1"),
	}
	_, err := ConfirmPayment(db, gw, payload)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestConfirmPaymentReplayIsNoOp(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")
	checkedOutOrder(t, db, gw)

	payload := CallbackPayload{
		GatewayOrderID:   "order_G1",
		GatewayPaymentID: "pay_P1",
		GatewaySignature: sign("order_G1", "pay_P1"),
	}
	_, err := ConfirmPayment(db, gw, payload)
	require.NoError(t, err)
	_, err = ConfirmPayment(db, gw, payload)
	require.NoError(t, err)

	var history int64
	db.Model(&models.UserPurchaseHistory{}).Count(&history)
	assert.EqualValues(t, 2, history, "replayed callback must not duplicate history rows")
}

func TestOrderSnapshotSurvivesProductEdits(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")
	order := checkedOutOrder(t, db, gw)

	// Edit and delete products after the order is placed.
	var productA models.Product
	require.NoError(t, db.Where("name = ?", "Product A").First(&productA).Error)
	require.NoError(t, db.Model(&productA).Updates(map[string]interface{}{
		"name":  "Renamed A",
		"price": decimal.RequireFromString("999.00"),
	}).Error)

	var productB models.Product
	require.NoError(t, db.Where("name = ?", "Product B").First(&productB).Error)
	require.NoError(t, db.Delete(&productB).Error)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)
	byName := map[string]models.OrderItem{}
	for _, it := range items {
		byName[it.ProductName] = it
	}
	assert.True(t, byName["Product A"].Price.Equal(decimal.RequireFromString("100.00")),
		"snapshot price must not follow product edits")
	assert.Contains(t, byName, "Product B", "snapshot name must survive product deletion")
}
