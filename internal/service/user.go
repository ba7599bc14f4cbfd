package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
	"github.com/karishma-dev/link-sharing-app-backend/internal/repository"
)

// ErrUnknownPlatform is returned when a submitted link references a
// platform id that is not in the catalog.
var ErrUnknownPlatform = errors.New("unknown platform id")

// LinkInput is a single link in a profile update.
type LinkInput struct {
	PlatformID string `json:"platform_id" binding:"required,uuid"`
	URL        string `json:"url" binding:"required,url"`
}

// UpdateProfileRequest is a partial profile update; nil fields are left
// untouched. A non-nil Links slice replaces the user's links wholesale.
type UpdateProfileRequest struct {
	FirstName *string      `json:"firstName"`
	LastName  *string      `json:"lastName"`
	Image     *string      `json:"image"`
	Links     *[]LinkInput `json:"links" binding:"omitempty,dive"`
}

// UserService handles profile reads/updates and the admin user surface.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo     repository.UserRepository
	linkRepo     repository.LinkRepository
	platformRepo repository.PlatformRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository, linkRepo repository.LinkRepository, platformRepo repository.PlatformRepository) UserService {
	return &userService{
		userRepo:     userRepo,
		linkRepo:     linkRepo,
		platformRepo: platformRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Validate the link set before touching anything, so a rejected
	// request leaves no partial state behind.
	var links []models.UserLink
	if req.Links != nil {
		links, err = s.buildLinks(ctx, *req.Links)
		if err != nil {
			return nil, err
		}
	}

	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	if req.Image != nil {
		user.Image = req.Image
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.Links != nil {
		if err := s.linkRepo.ReplaceForUser(ctx, userID, links); err != nil {
			return nil, err
		}
	}

	// Re-read so the response carries the fresh link set with platforms.
	return s.GetProfile(ctx, userID)
}

func (s *userService) buildLinks(ctx context.Context, inputs []LinkInput) ([]models.UserLink, error) {
	links := make([]models.UserLink, 0, len(inputs))
	ids := make([]uuid.UUID, 0, len(inputs))
	seen := make(map[uuid.UUID]bool, len(inputs))

	for _, in := range inputs {
		platformID, err := uuid.Parse(in.PlatformID)
		if err != nil {
			return nil, ErrUnknownPlatform
		}
		links = append(links, models.UserLink{
			PlatformID: platformID,
			URL:        in.URL,
		})
		if !seen[platformID] {
			seen[platformID] = true
			ids = append(ids, platformID)
		}
	}

	if len(ids) > 0 {
		count, err := s.platformRepo.CountByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if count != int64(len(ids)) {
			return nil, ErrUnknownPlatform
		}
	}

	return links, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.GetProfile(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
