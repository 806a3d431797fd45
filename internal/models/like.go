package models

import (
	"time"
)

// Like records a user's like on a post. The combination of PostID and
// UserID is unique, so a user may like a post at most once.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
