package repository

import (
	"context"

	"gorm.io/gorm"

	"lingua/internal/model"
)

// MessageRepository defines contact-message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	List(ctx context.Context) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) List(ctx context.Context) ([]model.Message, error) {
	var msgs []model.Message
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
