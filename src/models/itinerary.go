package models

import "github.com/YinkaFoster/fostertours/src/types"

type Itinerary struct {
	ID          string           `gorm:"primarykey" json:"itinerary_id"`
	UserID      string           `gorm:"index" json:"user_id"`
	Title       string           `json:"title"`
	Destination string           `json:"destination"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	Days        types.JSONBArray `gorm:"type:jsonb" json:"days,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	AIContent   string           `json:"ai_content,omitempty"`
	AIGenerated bool             `json:"ai_generated,omitempty"`

	types.Timestamps
}

// AISession persists a planner conversation so context survives restarts
// and replicas; the transcript is a JSONB array of {role, content, timestamp}.
type AISession struct {
	ID          string           `gorm:"primarykey" json:"session_id"`
	UserID      string           `gorm:"index" json:"user_id"`
	Destination string           `json:"destination"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
	Budget      string           `json:"budget,omitempty"`
	Travelers   int              `json:"travelers,omitempty"`
	Interests   types.JSONBArray `gorm:"type:jsonb" json:"interests,omitempty"`
	Messages    types.JSONBArray `gorm:"type:jsonb" json:"messages,omitempty"`

	types.Timestamps
}
