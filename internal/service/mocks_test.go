package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
)

type mockUserRepository struct {
	findByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc    func(ctx context.Context, id uuid.UUID) (*models.User, error)
	listFunc        func(ctx context.Context) ([]models.User, error)
	createFunc      func(ctx context.Context, user *models.User) error
	updateFunc      func(ctx context.Context, user *models.User) error
	deleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockLinkRepository struct {
	replaceForUserFunc func(ctx context.Context, userID uuid.UUID, links []models.UserLink) error
}

func (m *mockLinkRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, links []models.UserLink) error {
	if m.replaceForUserFunc != nil {
		return m.replaceForUserFunc(ctx, userID, links)
	}
	return errors.New("not implemented")
}

type mockPlatformRepository struct {
	listFunc       func(ctx context.Context) ([]models.Platform, error)
	findByIDFunc   func(ctx context.Context, id uuid.UUID) (*models.Platform, error)
	countByIDsFunc func(ctx context.Context, ids []uuid.UUID) (int64, error)
	createFunc     func(ctx context.Context, platform *models.Platform) error
	updateFunc     func(ctx context.Context, platform *models.Platform) error
	deleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPlatformRepository) List(ctx context.Context) ([]models.Platform, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlatformRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Platform, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlatformRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.countByIDsFunc != nil {
		return m.countByIDsFunc(ctx, ids)
	}
	return 0, errors.New("not implemented")
}

func (m *mockPlatformRepository) Create(ctx context.Context, platform *models.Platform) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, platform)
	}
	return errors.New("not implemented")
}

func (m *mockPlatformRepository) Update(ctx context.Context, platform *models.Platform) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, platform)
	}
	return errors.New("not implemented")
}

func (m *mockPlatformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}
