package models

import "github.com/YinkaFoster/fostertours/src/types"

// SearchRecord logs one inventory search and where its results came from.
type SearchRecord struct {
	ID          uint        `gorm:"primarykey" json:"-"`
	UserID      string      `gorm:"index" json:"user_id,omitempty"`
	Kind        string      `json:"kind"`
	Query       types.JSONB `gorm:"type:jsonb" json:"query"`
	ResultCount int         `json:"result_count"`
	Source      string      `json:"source"`

	types.Timestamps
}

type EmailLog struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	Type      string `json:"type"`
	ToEmail   string `json:"to_email"`
	BookingID string `json:"booking_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`

	types.Timestamps
}
