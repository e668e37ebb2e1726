package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"litboard/internal/crypto"
	"litboard/internal/infrastructure/gormdb"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gormdb.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewAuthService(gormdb.NewUserRepository(db), crypto.NewArgon2Hasher())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "ben", "password1")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected a generated id")
	}
	if user.Password == "password1" {
		t.Error("stored password must be hashed")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on insert")
	}

	got, err := svc.Login(ctx, "ben", "password1")
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user id %d, got %d", user.ID, got.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ben", "password1"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	_, err := svc.Register(ctx, "ben", "password2")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ben", "password1"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	_, err := svc.Login(ctx, "ben", "not-the-password")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestLoginIsCaseInsensitive(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ben", "password1"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	user, err := svc.Login(ctx, "ben", "password1")
	if err != nil {
		t.Fatalf("expected case-insensitive login to succeed, got %v", err)
	}
	if user.Username != "Ben" {
		t.Errorf("expected stored username to be returned, got %s", user.Username)
	}
}
