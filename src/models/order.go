package models

import "github.com/YinkaFoster/fostertours/src/types"

type StoreOrder struct {
	ID              string              `gorm:"primarykey" json:"order_id"`
	UserID          string              `gorm:"index" json:"user_id"`
	Items           types.JSONBArray    `gorm:"type:jsonb" json:"items"`
	Subtotal        float64             `json:"subtotal"`
	Shipping        float64             `json:"shipping"`
	Total           float64             `json:"total"`
	ShippingAddress types.JSONB         `gorm:"type:jsonb" json:"shipping_address,omitempty"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	WalletUsed      float64             `json:"wallet_used"`
	Status          types.OrderStatus   `gorm:"default:pending" json:"status"`
	PaymentStatus   types.PaymentStatus `gorm:"default:pending" json:"payment_status"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
