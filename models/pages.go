package models

import "time"

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type StaticPage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"size:50;uniqueIndex;not null" json:"slug"` // "privacy" or "terms"
	Content     string    `json:"content"`
	ExternalURL string    `json:"external_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type About struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"not null" json:"title"`
	Subtitle         string    `json:"subtitle"`
	ShortDescription string    `json:"short_description"`
	Content          string    `json:"content"`
	Mission          string    `json:"mission"`
	Vision           string    `json:"vision"`
	ShopDetails      string    `json:"shop_details"`
	Image            string    `json:"image"`
	HeroImage        string    `json:"hero_image"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
