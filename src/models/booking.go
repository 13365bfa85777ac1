package models

import "github.com/YinkaFoster/fostertours/src/types"

type Booking struct {
	ID               string              `gorm:"primarykey" json:"booking_id"`
	UserID           string              `gorm:"index" json:"user_id"`
	BookingType      types.BookingType   `json:"booking_type"`
	ItemID           string              `json:"item_id,omitempty"`
	ItemDetails      types.JSONB         `gorm:"type:jsonb" json:"item_details,omitempty"`
	TotalAmount      float64             `json:"total_amount"`
	Status           types.BookingStatus `gorm:"default:pending" json:"status"`
	PaymentStatus    types.PaymentStatus `gorm:"default:pending" json:"payment_status"`
	PaymentReference string              `json:"payment_reference,omitempty"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
