package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lingua/internal/cache"
	apperrors "lingua/internal/errors"
	"lingua/internal/model"
	"lingua/internal/repository"
)

const (
	usersListKey = "users:list"
	listCacheTTL = time.Minute
)

// UserService exposes user administration operations.
type UserService interface {
	CreateUser(ctx context.Context, name, email, role string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// CreateUser inserts a user without a credential (the administrative path).
// An empty role defaults to student.
func (s *userService) CreateUser(ctx context.Context, name, email, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleStudent
	}
	user := &model.User{Name: name, Email: email, Role: role}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.cache.Invalidate(ctx, usersListKey)
	return user, nil
}

// ListUsers returns all users newest first, cache-aside.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	if data := s.cache.Get(ctx, usersListKey); data != nil {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(users); err == nil {
		s.cache.Set(ctx, usersListKey, payload, listCacheTTL)
	}
	return users, nil
}
