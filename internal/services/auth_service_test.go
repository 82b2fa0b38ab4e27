package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
	model "task-tracker.com/task-tracker/pkg/models"
)

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), NewPasswordHasher()), db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string) *model.User {
	t.Helper()

	hash, err := NewPasswordHasher().Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user, err := repository.NewUserRepository(db).CreateUser(context.Background(), username, username+"@example.com", hash)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestAuthenticate_UsernameRequired(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Authenticate(context.Background(), "", "test123")
	if !errors.Is(err, apperrors.ErrUsernameRequired) {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}
}

func TestAuthenticate_PasswordRequired(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Authenticate(context.Background(), "test_user", "")
	if !errors.Is(err, apperrors.ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Authenticate(context.Background(), "nobody", "test123")
	if !errors.Is(err, apperrors.ErrIncorrectCredentials) {
		t.Errorf("expected ErrIncorrectCredentials, got %v", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	service, db := newTestAuthService(t)
	createTestUser(t, db, "test_user", "test123")

	_, err := service.Authenticate(context.Background(), "test_user", "pass")
	if !errors.Is(err, apperrors.ErrIncorrectCredentials) {
		t.Errorf("expected ErrIncorrectCredentials, got %v", err)
	}
	if err.Error() != "Incorrect username or password supplied." {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAuthenticate_TokenIsReusedAcrossLogins(t *testing.T) {
	service, db := newTestAuthService(t)
	createTestUser(t, db, "test_user", "test123")
	ctx := context.Background()

	first, err := service.Authenticate(ctx, "test_user", "test123")
	if err != nil {
		t.Fatalf("first authentication failed: %v", err)
	}
	if len(first) != 40 {
		t.Errorf("expected a 40-character token key, got %d characters", len(first))
	}

	second, err := service.Authenticate(ctx, "test_user", "test123")
	if err != nil {
		t.Fatalf("second authentication failed: %v", err)
	}
	if first != second {
		t.Errorf("expected the same token on repeat login, got %q then %q", first, second)
	}
}

func TestAuthenticate_DistinctUsersGetDistinctTokens(t *testing.T) {
	service, db := newTestAuthService(t)
	createTestUser(t, db, "first_user", "test123")
	createTestUser(t, db, "second_user", "test123")
	ctx := context.Background()

	first, err := service.Authenticate(ctx, "first_user", "test123")
	if err != nil {
		t.Fatalf("authentication failed: %v", err)
	}
	second, err := service.Authenticate(ctx, "second_user", "test123")
	if err != nil {
		t.Fatalf("authentication failed: %v", err)
	}

	if first == second {
		t.Error("two users ended up sharing a token")
	}
}
