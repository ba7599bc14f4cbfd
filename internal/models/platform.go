// Package models contains data models for the link-sharing backend.
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Platform represents an external platform a user can link to
// (GitHub, YouTube, etc.) together with its rendering hints.
type Platform struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	LightIcon    string    `json:"lightIcon" gorm:"size:255;not null"`
	DarkIcon     string    `json:"darkIcon" gorm:"size:255;not null"`
	PreviewColor string    `json:"previewColor" gorm:"size:50;not null"`
}

// TableName returns the database table name for the Platform model.
func (Platform) TableName() string {
	return "platforms"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *Platform) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
