package models

import "time"

// Like is at most one per (post, user); the unique index backs up the
// handler-level duplicate check.
type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	PostID    int       `gorm:"uniqueIndex:idx_like_once" json:"post_id"`
	UserID    int       `gorm:"uniqueIndex:idx_like_once" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
