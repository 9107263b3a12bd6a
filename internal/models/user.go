// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account in the Friendly application. The ID is an opaque
// string assigned once at creation and never changed.
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	UserName        string    `gorm:"unique;not null" json:"userName"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `gorm:"unique;not null" json:"email"`
	PhoneNumber     string    `json:"phoneNumber"`
	ProfileImageURL string    `json:"profileImageUrl"`
	EmailConfirmed  bool      `json:"emailConfirmed"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// BeforeCreate assigns an opaque ID when none was provided.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
