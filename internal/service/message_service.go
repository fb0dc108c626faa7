package service

import (
	"context"
	"encoding/json"
	"fmt"

	"lingua/internal/cache"
	"lingua/internal/model"
	"lingua/internal/repository"
)

const messagesListKey = "messages:list"

// MessageService exposes contact-form operations.
type MessageService interface {
	CreateMessage(ctx context.Context, name, email, body string) (*model.Message, error)
	ListMessages(ctx context.Context) ([]model.Message, error)
}

type messageService struct {
	repo  repository.MessageRepository
	cache *cache.Client
}

// NewMessageService builds a MessageService with repository and cache.
func NewMessageService(repo repository.MessageRepository, cache *cache.Client) MessageService {
	return &messageService{repo: repo, cache: cache}
}

func (s *messageService) CreateMessage(ctx context.Context, name, email, body string) (*model.Message, error) {
	msg := &model.Message{Name: name, Email: email, Body: body}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	s.cache.Invalidate(ctx, messagesListKey)
	return msg, nil
}

func (s *messageService) ListMessages(ctx context.Context) ([]model.Message, error) {
	if data := s.cache.Get(ctx, messagesListKey); data != nil {
		var cached []model.Message
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(msgs); err == nil {
		s.cache.Set(ctx, messagesListKey, payload, listCacheTTL)
	}
	return msgs, nil
}
