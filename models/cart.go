package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one owner: an authenticated user or an anonymous
// session. The two unique indexes enforce one cart per owner either way.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    *string    `gorm:"uniqueIndex" json:"user_id,omitempty"`
	SessionID *string    `gorm:"uniqueIndex" json:"session_id,omitempty"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem carries no price snapshot. Subtotals always read the live product
// price, so the cart total tracks current prices until checkout freezes them.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_product" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Total requires Items.Product to be preloaded.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
