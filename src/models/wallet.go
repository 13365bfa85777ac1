package models

import "github.com/YinkaFoster/fostertours/src/types"

type WalletTransaction struct {
	ID          string                  `gorm:"primarykey" json:"transaction_id"`
	UserID      string                  `gorm:"index" json:"user_id"`
	Amount      float64                 `json:"amount"`
	Type        types.WalletEntryType   `json:"type"`
	Description string                  `json:"description,omitempty"`
	Status      types.TransactionStatus `gorm:"default:pending" json:"status"`
	Reference   string                  `json:"reference,omitempty"`

	User *User `gorm:"foreignKey:user_id" json:"-"`

	types.Timestamps
}
