package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusPaid    OrderStatus = "Paid"
	OrderStatusFailed  OrderStatus = "Failed"
)

// Order is the immutable record of a checkout attempt. Only Status,
// GatewayPaymentID and GatewaySignature change after creation, and only
// through the payment callback (Pending -> Paid/Failed, one-way).
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      string `gorm:"index;not null" json:"user_id"`
	User        User   `json:"-"`
	OrderNumber string `gorm:"size:12;uniqueIndex;not null" json:"order_number"`

	// Delivery details captured from the checkout form.
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	City    string `json:"city"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`

	GatewayOrderID   string `gorm:"index" json:"gateway_order_id"`
	GatewayPaymentID string `json:"gateway_payment_id,omitempty"`
	GatewaySignature string `json:"-"`

	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Status    OrderStatus     `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderItem freezes the product name and unit price at order creation.
// ProductID is nullable so the snapshot survives product deletion.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"index" json:"order_id"`
	ProductID   *uint           `json:"product_id,omitempty"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Quantity    int             `gorm:"default:1" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}

func (oi OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
