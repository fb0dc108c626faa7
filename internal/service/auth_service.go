package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lingua/internal/cache"
	apperrors "lingua/internal/errors"
	"lingua/internal/model"
	"lingua/internal/repository"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, cache *cache.Client) AuthService {
	return &authService{userRepo: userRepo, cache: cache}
}

// Signup creates a student account. The email pre-check only exists to give a
// clean error in the common case; under a race the unique index rejects the
// losing insert and that failure is reported the same way.
func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.cache.Invalidate(ctx, usersListKey)
	return user, nil
}

// Login authenticates via a single exact-match lookup on email and password.
// Every miss maps to ErrInvalidCredentials so the caller cannot tell whether
// the email exists.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	return user, nil
}
