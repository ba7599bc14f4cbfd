// Package models contains data models for the link-sharing backend.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserLink is a user-owned link to an external platform.
type UserLink struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	PlatformID uuid.UUID `json:"platform_id" gorm:"type:uuid;not null"`
	URL        string    `json:"url" gorm:"size:500;not null"`
	Platform   Platform  `json:"platform" gorm:"foreignKey:PlatformID"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for the UserLink model.
func (UserLink) TableName() string {
	return "user_links"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (l *UserLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
