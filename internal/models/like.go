package models

import "time"

// Like represents a user's like on a post.
// The combination of PostID and UserID must be unique.
type Like struct {
	LikeID    int       `gorm:"primaryKey" json:"likeId"`
	PostID    int       `gorm:"not null;uniqueIndex:idx_post_user" json:"postId"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_post_user" json:"userId"`
	CreatedAt time.Time `json:"-"`
}
