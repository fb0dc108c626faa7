package repository

import (
	"context"

	"gorm.io/gorm"

	"lingua/internal/model"
)

// RegistrationRepository defines course-registration persistence operations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.CourseRegistration) error
	List(ctx context.Context) ([]model.CourseRegistration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository builds a GORM-backed repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *model.CourseRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) List(ctx context.Context) ([]model.CourseRegistration, error) {
	var regs []model.CourseRegistration
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}
