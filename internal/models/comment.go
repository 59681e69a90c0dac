package models

import "time"

type Comment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	PostID    int       `json:"post_id"`
	UserID    int       `json:"user_id"`
	Body      string    `gorm:"column:comment;not null" json:"comment"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}
