package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/pkg/models"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTokenNotFound = errors.New("auth token not found")
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Created:      time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindToken(ctx context.Context, key string) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.WithContext(ctx).First(&token, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// GetOrCreateToken returns the user's token, minting one if none exists.
// Concurrent calls for the same user race on the insert; the uniqueness
// constraint on user_id makes the loser fall back to the winner's row.
func (r *UserRepository) GetOrCreateToken(ctx context.Context, userID uint) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.WithContext(ctx).First(&token, "user_id = ?", userID).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := newTokenKey()
	if err != nil {
		return nil, err
	}

	token = model.AuthToken{
		Key:     key,
		UserID:  userID,
		Created: time.Now().UTC(),
	}

	if createErr := r.db.WithContext(ctx).Create(&token).Error; createErr != nil {
		var existing model.AuthToken
		if err := r.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error; err == nil {
			return &existing, nil
		}
		return nil, createErr
	}

	return &token, nil
}

// newTokenKey mints a 40-character hex token key.
func newTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
