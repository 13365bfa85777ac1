package models

import (
	"time"

	"github.com/YinkaFoster/fostertours/src/types"
)

type User struct {
	ID            string  `gorm:"primarykey" json:"user_id"`
	Email         string  `gorm:"uniqueIndex" json:"email"`
	Password      string  `json:"-"`
	Name          string  `json:"name,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Picture       string  `json:"picture,omitempty"`
	Bio           string  `json:"bio,omitempty"`
	Location      string  `json:"location,omitempty"`
	Website       string  `json:"website,omitempty"`
	WalletBalance float64 `gorm:"default:0" json:"wallet_balance"`
	IsAdmin       bool    `gorm:"default:false" json:"is_admin"`

	Bookings []Booking           `gorm:"foreignKey:user_id" json:"bookings,omitempty"`
	Wallet   []WalletTransaction `gorm:"foreignKey:user_id" json:"wallet_transactions,omitempty"`

	types.Timestamps
}

type UserSession struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	UserID       string    `gorm:"index" json:"user_id"`
	SessionToken string    `gorm:"uniqueIndex" json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`

	User *User `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
