package models

import "github.com/YinkaFoster/fostertours/src/types"

// PaymentTransaction tracks one attempt against an external processor,
// keyed by the processor reference (Paystack reference or Stripe session id).
type PaymentTransaction struct {
	ID            string                  `gorm:"primarykey" json:"transaction_id"`
	Reference     string                  `gorm:"uniqueIndex" json:"reference"`
	UserID        string                  `gorm:"index" json:"user_id"`
	BookingID     string                  `json:"booking_id,omitempty"`
	Email         string                  `json:"email,omitempty"`
	Amount        float64                 `json:"amount"`
	Currency      string                  `gorm:"default:USD" json:"currency,omitempty"`
	Status        types.TransactionStatus `gorm:"default:pending" json:"status"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	Purpose       types.PaymentPurpose    `json:"purpose,omitempty"`
	Metadata      types.JSONB             `gorm:"type:jsonb" json:"metadata,omitempty"`
	IsMock        bool                    `json:"is_mock,omitempty"`

	User    *User    `gorm:"foreignKey:user_id" json:"-"`
	Booking *Booking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
