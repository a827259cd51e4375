package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/repositories"
	"go.uber.org/zap"
)

type MessageService struct {
	messageRepo *repositories.MessageRepo
	userRepo    *repositories.UserRepo
	notifier    *Notifier
	log         *zap.Logger
}

func NewMessageService(
	messageRepo *repositories.MessageRepo,
	userRepo *repositories.UserRepo,
	notifier *Notifier,
	log *zap.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		log:         log,
	}
}

func (s *MessageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == recipientID {
		return nil, ErrSelfMessage
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifier.NewMessage(ctx, recipientID, senderID)
	return m, nil
}

func (s *MessageService) Conversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]models.Message, error) {
	return s.messageRepo.ListConversation(ctx, userID, peerID, limit, offset)
}
