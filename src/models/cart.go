package models

import "github.com/YinkaFoster/fostertours/src/types"

// Cart is a single row per user, items held as a JSONB array of
// {product_id, name, price, quantity, image} entries.
type Cart struct {
	ID     uint             `gorm:"primarykey" json:"-"`
	UserID string           `gorm:"uniqueIndex" json:"user_id"`
	Items  types.JSONBArray `gorm:"type:jsonb" json:"items"`

	User *User `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
