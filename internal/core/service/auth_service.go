package service

import (
	"context"
	"errors"
	"fmt"

	"litboard/internal/core/domain"
	"litboard/internal/core/repository"
	"litboard/internal/crypto"
)

type AuthService struct {
	users  repository.UserRepository
	hasher crypto.PasswordHasher
}

func NewAuthService(users repository.UserRepository, hasher crypto.PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
	}
}

// Register hashes the password and creates the account. Input length
// validation happens in the resolver layer; this only enforces what the
// storage layer can tell us, which is username uniqueness.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(username, hash)
	err = s.users.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by case-insensitive username and password. The two
// failure modes stay distinct so the resolver can attach the error to the
// right input field.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, crypto.ErrMismatch) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	return user, nil
}

// HashPassword exposes the hasher for admin tooling that creates accounts
// outside the register flow.
func (s *AuthService) HashPassword(password string) (string, error) {
	return s.hasher.Hash(password)
}
