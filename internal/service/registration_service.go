package service

import (
	"context"
	"encoding/json"
	"fmt"

	"lingua/internal/cache"
	"lingua/internal/model"
	"lingua/internal/repository"
)

const registrationsListKey = "registrations:list"

// RegistrationService exposes course-registration operations.
type RegistrationService interface {
	CreateRegistration(ctx context.Context, reg *model.CourseRegistration) (*model.CourseRegistration, error)
	ListRegistrations(ctx context.Context) ([]model.CourseRegistration, error)
}

type registrationService struct {
	repo  repository.RegistrationRepository
	cache *cache.Client
}

// NewRegistrationService builds a RegistrationService with repository and cache.
func NewRegistrationService(repo repository.RegistrationRepository, cache *cache.Client) RegistrationService {
	return &registrationService{repo: repo, cache: cache}
}

func (s *registrationService) CreateRegistration(ctx context.Context, reg *model.CourseRegistration) (*model.CourseRegistration, error) {
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	s.cache.Invalidate(ctx, registrationsListKey)
	return reg, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context) ([]model.CourseRegistration, error) {
	if data := s.cache.Get(ctx, registrationsListKey); data != nil {
		var cached []model.CourseRegistration
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(regs); err == nil {
		s.cache.Set(ctx, registrationsListKey, payload, listCacheTTL)
	}
	return regs, nil
}
