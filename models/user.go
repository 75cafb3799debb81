package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Orders       []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
