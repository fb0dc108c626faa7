package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "lingua/internal/errors"
	"lingua/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("role defaults to student", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.CreateUser(context.Background(), "No Role", "norole@example.com", "")

		assert.NoError(t, err)
		assert.Equal(t, model.RoleStudent, user.Role)
		assert.Empty(t, user.Password)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit admin role is kept", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.CreateUser(context.Background(), "Boss", "boss@example.com", model.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
			Return(gorm.ErrDuplicatedKey)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.CreateUser(context.Background(), "Dup", "dup@example.com", "")

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{
		{ID: 2, Email: "b@example.com"},
		{ID: 1, Email: "a@example.com"},
	}, nil)

	svc := NewUserService(mockRepo, nil)
	users, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, uint(2), users[0].ID)
	mockRepo.AssertExpectations(t)
}
