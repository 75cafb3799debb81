package models

import "time"

// UserPurchaseHistory gets one row per order line, written only after the
// payment callback verifies.
type UserPurchaseHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	ProductID   *uint     `json:"product_id,omitempty"`
	OrderID     uint      `gorm:"index;not null" json:"order_id"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	PurchasedAt time.Time `json:"purchased_at"`
}
