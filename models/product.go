package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image           string          `json:"image"`
	CategoryID      uint            `gorm:"index" json:"category_id"`
	Category        Category        `json:"category,omitempty"`
	Stock           int             `gorm:"default:0" json:"stock"`
	Available       bool            `gorm:"default:true" json:"available"`
	DiscountPercent int             `gorm:"default:0" json:"discount_percent"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}
