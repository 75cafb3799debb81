package models

import "time"

type FestivalSale struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `gorm:"default:0" json:"discount_percent"`
	BannerImage     string    `json:"banner_image"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
}

// IsOngoing reports whether the sale window covers now, inclusive on both
// ends. An inactive sale is never ongoing regardless of the window.
func (s FestivalSale) IsOngoing(now time.Time) bool {
	return s.IsActive && !now.Before(s.StartDate) && !now.After(s.EndDate)
}
