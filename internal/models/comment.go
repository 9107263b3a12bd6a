// Package models contains data structures for the application's domain models.
package models

import "time"

// MaxCommentLen bounds the comment text length.
const MaxCommentLen = 200

// Comment represents a comment on a post. Only CommentText is mutable after
// creation; the parent post and author never change.
type Comment struct {
	CommentID   int       `gorm:"primaryKey" json:"commentId"`
	CommentText string    `gorm:"size:200;not null" json:"commentText"`
	CommentDate time.Time `json:"commentDate"`
	UserID      string    `gorm:"size:64;not null;index" json:"userId"`
	PostID      int       `gorm:"not null;index" json:"postId"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
