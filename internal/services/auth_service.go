package services

import (
	"context"
	"errors"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

type AuthService struct {
	users  *repository.UserRepository
	hasher *PasswordHasher
}

func NewAuthService(users *repository.UserRepository, hasher *PasswordHasher) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
	}
}

// Authenticate verifies a username/password pair and returns the user's
// bearer token key, minting one on first login and reusing it afterwards.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" {
		return "", apperrors.ErrUsernameRequired
	}
	if password == "" {
		return "", apperrors.ErrPasswordRequired
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", apperrors.ErrIncorrectCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrIncorrectCredentials
	}

	token, err := s.users.GetOrCreateToken(ctx, user.ID)
	if err != nil {
		return "", err
	}

	return token.Key, nil
}
