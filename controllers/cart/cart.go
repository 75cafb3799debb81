package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/models"
)

// CartOwner identifies who a cart belongs to: exactly one of the two fields
// is set. Resolution is explicit here instead of being smeared across
// handlers reading ambient session state.
type CartOwner struct {
	UserID    *string
	SessionID *string
}

var errNoIdentity = errors.New("no user or session identity on request")

// ResolveOwner prefers the authenticated user id, falling back to the
// anonymous cart session token.
func ResolveOwner(c *gin.Context) (CartOwner, error) {
	if v, ok := c.Get("user_id"); ok {
		if userID, ok := v.(string); ok && userID != "" {
			return CartOwner{UserID: &userID}, nil
		}
	}
	if v, ok := c.Get("session_id"); ok {
		if sessionID, ok := v.(string); ok && sessionID != "" {
			return CartOwner{SessionID: &sessionID}, nil
		}
	}
	return CartOwner{}, errNoIdentity
}

// GetOrCreateCart returns the owner's cart, creating an empty one on first
// use. The unique owner indexes guarantee at most one cart per owner.
func GetOrCreateCart(db *gorm.DB, owner CartOwner) (*models.Cart, error) {
	var cart models.Cart
	query := db.Preload("Items.Product")
	if owner.UserID != nil {
		query = query.Where("user_id = ?", *owner.UserID)
	} else if owner.SessionID != nil {
		query = query.Where("session_id = ?", *owner.SessionID)
	} else {
		return nil, errNoIdentity
	}

	err := query.First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: owner.UserID, SessionID: owner.SessionID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem increments the line for (cart, product) or inserts it with the
// given quantity. There is deliberately no stock check here; overselling is a
// documented limitation of this flow.
func AddItem(db *gorm.DB, cart *models.Cart, product *models.Product, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity += qty
	item.AddedAt = time.Now()
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SetQuantity upserts the line to an absolute quantity; zero or less removes
// it entirely.
func SetQuantity(db *gorm.DB, cart *models.Cart, productID uint, qty int) error {
	if qty <= 0 {
		return db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			Delete(&models.CartItem{}).Error
	}
	var item models.CartItem
	err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}
		return db.Create(&item).Error
	}
	if err != nil {
		return err
	}
	item.Quantity = qty
	item.AddedAt = time.Now()
	return db.Save(&item).Error
}

// DeleteCart removes the cart and its items in one transaction. Cascade is
// spelled out rather than left to the schema.
func DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Cart{}, cartID).Error
}

func loadProduct(db *gorm.DB, c *gin.Context) (*models.Product, bool) {
	idParam := c.Param("product_id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return nil, false
	}
	var product models.Product
	if err := db.First(&product, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
		}
		return nil, false
	}
	return &product, true
}

func resolveCart(db *gorm.DB, c *gin.Context) (*models.Cart, bool) {
	owner, err := ResolveOwner(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	cart, err := GetOrCreateCart(db, owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return nil, false
	}
	return cart, true
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := resolveCart(db, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cart_id":    cart.CartID,
			"items":      cart.Items,
			"total":      cart.Total(),
			"item_count": cart.ItemCount(),
		})
	}
}

type quantityInput struct {
	Quantity int `json:"quantity"`
}

// POST /cart/add/:product_id
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(db, c)
		if !ok {
			return
		}
		cart, ok := resolveCart(db, c)
		if !ok {
			return
		}

		var input quantityInput
		_ = c.ShouldBindJSON(&input) // absent body means add one

		item, err := AddItem(db, cart, product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /cart/update/:product_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := loadProduct(db, c)
		if !ok {
			return
		}
		cart, ok := resolveCart(db, c)
		if !ok {
			return
		}

		var input quantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := SetQuantity(db, cart, product.ID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// POST /cart/remove/:product_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("product_id")
		id, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		cart, ok := resolveCart(db, c)
		if !ok {
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, uint(id)).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		var cart models.Cart
		if err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, []models.CartItem{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart.Items)
	}
}
