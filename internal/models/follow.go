package models

import "time"

// Follow is a directed edge: follower follows followed. The composite
// unique index keeps duplicate edges out even under concurrent requests.
type Follow struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	FollowerID int       `gorm:"uniqueIndex:idx_follow_edge" json:"follower_id"`
	FollowedID int       `gorm:"uniqueIndex:idx_follow_edge" json:"followed_id"`
	Follower   User      `gorm:"foreignKey:FollowerID" json:"-"`
	Followed   User      `gorm:"foreignKey:FollowedID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
