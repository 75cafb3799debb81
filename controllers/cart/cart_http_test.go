package cartControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/middleware"
	"github.com/meetchovatiya27/ecommarce-website/models"
)

func newCartRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/cart")
	group.Use(middleware.OptionalToken("test-jwt-secret"), middleware.CartSession())
	{
		group.GET("", GetCart(db))
		group.POST("/add/:product_id", AddToCart(db))
		group.POST("/update/:product_id", UpdateCartItem(db))
		group.POST("/remove/:product_id", RemoveCartItem(db))
	}
	return r
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range resp.Result().Cookies() {
		if c.Name == "cart_session" {
			return c
		}
	}
	t.Fatal("cart_session cookie not set")
	return nil
}

func TestAnonymousCartFlow(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Diya Set", "100.00")
	r := newCartRouter(db)

	// First add issues a session cookie and creates the cart.
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", product.ID), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	cookie := sessionCookie(t, resp)

	// The same session adds again: one line, quantity 2.
	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", product.ID), nil)
	req.AddCookie(cookie)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookie)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Items     []models.CartItem `json:"items"`
		Total     string            `json:"total"`
		ItemCount int               `json:"item_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString(body.Total).Equal(decimal.NewFromInt(200)), "got %s", body.Total)
	assert.Equal(t, 2, body.ItemCount)

	// A fresh session sees its own empty cart, not this one.
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
}

func TestUpdateCartItemRemovesOnZero(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Lantern", "50.00")
	r := newCartRouter(db)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/add/%d", product.ID), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	cookie := sessionCookie(t, resp)

	req = httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/update/%d", product.ID),
		strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRemoveMissingCartItem(t *testing.T) {
	db := newTestDB(t)
	r := newCartRouter(db)

	req := httptest.NewRequest(http.MethodPost, "/cart/remove/42", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
