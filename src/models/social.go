package models

import (
	"time"

	"github.com/YinkaFoster/fostertours/src/types"
)

type Follow struct {
	ID          uint   `gorm:"primarykey" json:"-"`
	FollowerID  string `gorm:"index:idx_follow_edge,unique" json:"follower_id"`
	FollowingID string `gorm:"index:idx_follow_edge,unique" json:"following_id"`

	types.Timestamps
}

type PostLike struct {
	ID     uint   `gorm:"primarykey" json:"-"`
	PostID string `gorm:"index:idx_post_like,unique" json:"post_id"`
	UserID string `gorm:"index:idx_post_like,unique" json:"user_id"`

	types.Timestamps
}

type PostComment struct {
	ID        string `gorm:"primarykey" json:"comment_id"`
	PostID    string `gorm:"index" json:"post_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	UserImage string `json:"user_image,omitempty"`
	Content   string `json:"content"`

	types.Timestamps
}

type PostShare struct {
	ID       string `gorm:"primarykey" json:"share_id"`
	PostID   string `gorm:"index" json:"post_id"`
	UserID   string `json:"user_id,omitempty"`
	Platform string `gorm:"default:link" json:"platform"`

	types.Timestamps
}

type Story struct {
	ID        string    `gorm:"primarykey" json:"story_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	MediaURL  string    `json:"media_url"`
	Caption   string    `json:"caption,omitempty"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`

	User *User `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}

type Favorite struct {
	ID       string `gorm:"primarykey" json:"favorite_id"`
	UserID   string `gorm:"index:idx_user_favorite,unique" json:"user_id"`
	ItemID   string `gorm:"index:idx_user_favorite,unique" json:"item_id"`
	ItemType string `json:"item_type"`

	types.Timestamps
}

type Call struct {
	ID       string `gorm:"primarykey" json:"call_id"`
	CallerID string `gorm:"index" json:"caller_id"`
	CalleeID string `gorm:"index" json:"callee_id"`
	CallType string `gorm:"default:voice" json:"call_type"`
	Duration int    `json:"duration"`

	types.Timestamps
}

type LocationShare struct {
	ID        string  `gorm:"primarykey" json:"share_id"`
	UserID    string  `gorm:"uniqueIndex" json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`

	types.Timestamps
}
