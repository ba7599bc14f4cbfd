// Package models contains data models for the link-sharing backend.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName    *string    `json:"firstName" gorm:"size:100"`
	LastName     *string    `json:"lastName" gorm:"size:100"`
	Email        string     `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255;not null"`
	Image        *string    `json:"image" gorm:"size:255"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null;default:false"`
	Links        []UserLink `json:"links" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
