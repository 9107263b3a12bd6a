// Package models contains data structures for the application's domain models.
package models

import "time"

// MaxCaptionLen bounds the post caption length.
const MaxCaptionLen = 200

// Post represents an image post. Caption is the only field that may change
// after creation; the image path, date and owner are fixed at create time.
// Comments and Likes are removed with their post (cascade is an explicit
// schema decision, not an accident of the ORM).
type Post struct {
	PostID        int       `gorm:"primaryKey" json:"postId"`
	Caption       string    `gorm:"size:200;not null" json:"caption"`
	PostImagePath string    `gorm:"not null" json:"postImagePath"`
	PostDate      time.Time `gorm:"index" json:"postDate"`
	UserID        string    `gorm:"size:64;not null;index" json:"userId"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}
