package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
)

func notFoundErr() error {
	return fmt.Errorf("failed to find user: %w", gorm.ErrRecordNotFound)
}

func newTestAuthService(t *testing.T, repo *mockUserRepository) AuthService {
	t.Helper()
	return NewAuthService(repo, newTestJWTService(t))
}

func TestSignup_Success(t *testing.T) {
	var created *models.User
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, notFoundErr()
		},
		createFunc: func(ctx context.Context, user *models.User) error {
			created = user
			return nil
		},
	}
	svc := newTestAuthService(t, repo)

	user, err := svc.Signup(context.Background(), "A@X.com", "secret123")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if user.Email != "a@x.com" {
		t.Errorf("email = %q, want normalized %q", user.Email, "a@x.com")
	}
	if created == nil {
		t.Fatal("Create was not called")
	}
	if created.PasswordHash == "" || created.PasswordHash == "secret123" {
		t.Error("password was not hashed before create")
	}
	if !CheckPassword("secret123", created.PasswordHash) {
		t.Error("stored hash does not verify against the plaintext")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: uuid.New(), Email: email}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Signup(context.Background(), "a@x.com", "secret123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestSignup_DuplicateRace(t *testing.T) {
	// Pre-check misses, then the unique index fires on create.
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, notFoundErr()
		},
		createFunc: func(ctx context.Context, user *models.User) error {
			return fmt.Errorf("failed to create user: %w", gorm.ErrDuplicatedKey)
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Signup(context.Background(), "a@x.com", "secret123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	userID := uuid.New()
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email != "a@x.com" {
				t.Errorf("FindByEmail called with %q, want normalized email", email)
			}
			return &models.User{ID: userID, Email: "a@x.com", PasswordHash: hash, IsAdmin: true}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	resp, err := svc.Login(context.Background(), " A@X.com ", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned empty token")
	}
	if resp.User.ID != userID {
		t.Errorf("user id = %v, want %v", resp.User.ID, userID)
	}
	if want := int64(testExpiry.Seconds()); resp.ExpiresIn != want {
		t.Errorf("expires_in = %d, want %d", resp.ExpiresIn, want)
	}

	// The issued token must carry the user's identity and role.
	claims, err := newTestJWTService(t).Validate(resp.Token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.UserID != userID.String() || claims.Email != "a@x.com" || !claims.IsAdmin {
		t.Errorf("claims = %+v, want subject %v", claims, userID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: uuid.New(), Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(t, repo)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return nil, notFoundErr()
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePassword_Success(t *testing.T) {
	hash, err := HashPassword("old-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	userID := uuid.New()
	var updated *models.User
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: userID, Email: "a@x.com", PasswordHash: hash}, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}
	svc := newTestAuthService(t, repo)

	if err := svc.ChangePassword(context.Background(), userID, "old-password", "new-password"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if updated == nil {
		t.Fatal("Update was not called")
	}
	if !CheckPassword("new-password", updated.PasswordHash) {
		t.Error("new password does not verify against stored hash")
	}
	if CheckPassword("old-password", updated.PasswordHash) {
		t.Error("old password still verifies after change")
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	hash, err := HashPassword("old-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, PasswordHash: hash}, nil
		},
		updateFunc: func(ctx context.Context, user *models.User) error {
			t.Error("Update must not be called when the old password is wrong")
			return nil
		},
	}
	svc := newTestAuthService(t, repo)

	err = svc.ChangePassword(context.Background(), uuid.New(), "not-the-old-password", "new-password")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("ChangePassword() error = %v, want ErrWrongPassword", err)
	}
}
