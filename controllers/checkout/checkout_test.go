package checkoutControllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/config"
	cartControllers "github.com/meetchovatiya27/ecommarce-website/controllers/cart"
	"github.com/meetchovatiya27/ecommarce-website/gateway"
	"github.com/meetchovatiya27/ecommarce-website/models"
)

const testSecret = "test_secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.UserPurchaseHistory{},
	))
	return db
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return gateway.NewClient(config.Gateway{
		BaseURL:   ts.URL,
		KeyID:     "rzp_test_key",
		KeySecret: testSecret,
		Currency:  "INR",
	})
}

func okGateway(t *testing.T, orderID string) *gateway.Client {
	return newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": orderID, "status": "created"})
	})
}

func seedCart(t *testing.T, db *gorm.DB, userID string) (*models.Product, *models.Product) {
	t.Helper()
	a := models.Product{Name: "Product A", Price: decimal.RequireFromString("100.00"), Available: true, Stock: 5}
	b := models.Product{Name: "Product B", Price: decimal.RequireFromString("50.00"), Available: true, Stock: 5}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	cart, err := cartControllers.GetOrCreateCart(db, cartControllers.CartOwner{UserID: &userID})
	require.NoError(t, err)
	_, err = cartControllers.AddItem(db, cart, &a, 2)
	require.NoError(t, err)
	_, err = cartControllers.AddItem(db, cart, &b, 1)
	require.NoError(t, err)
	return &a, &b
}

func delivery() DeliveryInfo {
	return DeliveryInfo{
		Name:    "Asha Rao",
		Mobile:  "9876543210",
		City:    "Pune",
		Address: "14 MG Road",
		Pincode: "411001",
	}
}

func TestBeginCheckoutCreatesPendingOrderWithSnapshot(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "u1")

	var gatewayAmount int64
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gatewayAmount = body.Amount
		assert.Equal(t, "INR", body.Currency)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "order_G1", "status": "created"})
	})

	order, err := BeginCheckout(context.Background(), db, gw, "INR", "u1", delivery())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "order_G1", order.GatewayOrderID)
	assert.Len(t, order.OrderNumber, 12)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("250.00")), "got %s", order.Amount)
	assert.EqualValues(t, 25000, gatewayAmount, "gateway amount must be in minor units")

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)
	byName := map[string]models.OrderItem{}
	for _, it := range items {
		byName[it.ProductName] = it
	}
	assert.Equal(t, 2, byName["Product A"].Quantity)
	assert.True(t, byName["Product A"].Price.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 1, byName["Product B"].Quantity)
	assert.True(t, byName["Product B"].Price.Equal(decimal.RequireFromString("50.00")))

	// The cart survives checkout submission; only payment clears it.
	var cartItems int64
	db.Model(&models.CartItem{}).Count(&cartItems)
	assert.EqualValues(t, 2, cartItems)
}

func TestBeginCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	gw := okGateway(t, "order_G1")

	_, err := BeginCheckout(context.Background(), db, gw, "INR", "u1", delivery())
	assert.ErrorIs(t, err, ErrEmptyCart)

	userID := "u1"
	_, err = cartControllers.GetOrCreateCart(db, cartControllers.CartOwner{UserID: &userID})
	require.NoError(t, err)
	_, err = BeginCheckout(context.Background(), db, gw, "INR", "u1", delivery())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBeginCheckoutValidatesDelivery(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "u1")
	gatewayCalled := false
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gatewayCalled = true
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "order_G1"})
	})

	info := delivery()
	info.Pincode = "  "
	_, err := BeginCheckout(context.Background(), db, gw, "INR", "u1", info)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, gatewayCalled, "validation must fail before any remote call")

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.EqualValues(t, 0, orders)
}

func TestBeginCheckoutGatewayFailureLeavesNoWrites(t *testing.T) {
	db := newTestDB(t)
	seedCart(t, db, "u1")
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := BeginCheckout(context.Background(), db, gw, "INR", "u1", delivery())
	assert.ErrorIs(t, err, ErrGateway)

	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, items)
}

func TestMinorUnits(t *testing.T) {
	assert.EqualValues(t, 25000, minorUnits(decimal.RequireFromString("250.00")))
	assert.EqualValues(t, 9999, minorUnits(decimal.RequireFromString("99.99")))
	assert.EqualValues(t, 0, minorUnits(decimal.Zero))
}

func TestNewOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		n := newOrderNumber()
		assert.Len(t, n, 12)
		assert.False(t, seen[n], "order numbers must not repeat")
		seen[n] = true
	}
}
