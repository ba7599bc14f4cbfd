package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
	"github.com/karishma-dev/link-sharing-app-backend/internal/repository"
)

// ErrPlatformNotFound is returned when a platform id does not exist.
var ErrPlatformNotFound = errors.New("platform not found")

// PlatformInput carries the writable fields of a platform.
type PlatformInput struct {
	Name         string `json:"name" binding:"required"`
	LightIcon    string `json:"lightIcon" binding:"required"`
	DarkIcon     string `json:"darkIcon" binding:"required"`
	PreviewColor string `json:"previewColor" binding:"required"`
}

// PlatformService manages the platform catalog.
type PlatformService interface {
	List(ctx context.Context) ([]models.Platform, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Platform, error)
	Create(ctx context.Context, in PlatformInput) (*models.Platform, error)
	Update(ctx context.Context, id uuid.UUID, in PlatformInput) (*models.Platform, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type platformService struct {
	repo repository.PlatformRepository
}

// NewPlatformService creates a new PlatformService instance.
func NewPlatformService(repo repository.PlatformRepository) PlatformService {
	return &platformService{repo: repo}
}

func (s *platformService) List(ctx context.Context) ([]models.Platform, error) {
	return s.repo.List(ctx)
}

func (s *platformService) Get(ctx context.Context, id uuid.UUID) (*models.Platform, error) {
	platform, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	return platform, nil
}

func (s *platformService) Create(ctx context.Context, in PlatformInput) (*models.Platform, error) {
	platform := &models.Platform{
		Name:         in.Name,
		LightIcon:    in.LightIcon,
		DarkIcon:     in.DarkIcon,
		PreviewColor: in.PreviewColor,
	}
	if err := s.repo.Create(ctx, platform); err != nil {
		return nil, err
	}
	return platform, nil
}

func (s *platformService) Update(ctx context.Context, id uuid.UUID, in PlatformInput) (*models.Platform, error) {
	platform, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	platform.Name = in.Name
	platform.LightIcon = in.LightIcon
	platform.DarkIcon = in.DarkIcon
	platform.PreviewColor = in.PreviewColor

	if err := s.repo.Update(ctx, platform); err != nil {
		return nil, err
	}
	return platform, nil
}

func (s *platformService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlatformNotFound
		}
		return err
	}
	return nil
}
