package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
)

// PlatformRepository defines the interface for platform catalog operations.
type PlatformRepository interface {
	List(ctx context.Context) ([]models.Platform, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Platform, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	Create(ctx context.Context, platform *models.Platform) error
	Update(ctx context.Context, platform *models.Platform) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository creates a new PlatformRepository instance.
func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) List(ctx context.Context) ([]models.Platform, error) {
	var platforms []models.Platform
	if err := r.db.WithContext(ctx).Order("name").Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	return platforms, nil
}

func (r *platformRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Platform, error) {
	var platform models.Platform
	if err := r.db.WithContext(ctx).First(&platform, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to find platform by id %s: %w", id, err)
	}
	return &platform, nil
}

// CountByIDs returns how many of the given ids exist. Used to validate
// link submissions before writing them.
func (r *platformRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Platform{}).
		Where("id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count platforms: %w", err)
	}
	return count, nil
}

func (r *platformRepository) Create(ctx context.Context, platform *models.Platform) error {
	if err := r.db.WithContext(ctx).Create(platform).Error; err != nil {
		return fmt.Errorf("failed to create platform: %w", err)
	}
	return nil
}

func (r *platformRepository) Update(ctx context.Context, platform *models.Platform) error {
	if err := r.db.WithContext(ctx).Save(platform).Error; err != nil {
		return fmt.Errorf("failed to update platform id %s: %w", platform.ID, err)
	}
	return nil
}

func (r *platformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Platform{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete platform id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete platform id %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
