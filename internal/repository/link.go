package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
)

// LinkRepository defines the interface for user link operations.
type LinkRepository interface {
	ReplaceForUser(ctx context.Context, userID uuid.UUID, links []models.UserLink) error
}

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new LinkRepository instance.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{db: db}
}

// ReplaceForUser swaps a user's links for the given set atomically.
// Profile updates always submit the full list, so delete-and-insert keeps
// ordering and removal semantics trivial.
func (r *linkRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, links []models.UserLink) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserLink{}).Error; err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}
		for i := range links {
			links[i].UserID = userID
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace links for user %s: %w", userID, err)
	}
	return nil
}
