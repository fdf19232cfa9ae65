package service

import (
	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/pkg/logger"

	"go.uber.org/zap"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

// Notify creates a notification best-effort. Callers treat delivery as a side
// effect and never fail their own operation over it.
func (s *NotificationService) Notify(userID uint, notificationType, title, body string) {
	n := &model.Notification{
		UserID: userID,
		Type:   notificationType,
		Title:  title,
		Body:   body,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		logger.Log.Warn("failed to create notification",
			zap.Uint("userId", userID), zap.String("type", notificationType), zap.Error(err))
	}
}

func (s *NotificationService) List(userID uint, unreadOnly bool) ([]model.Notification, error) {
	return s.NotificationRepo.ListByUser(userID, unreadOnly)
}

func (s *NotificationService) MarkRead(id, userID uint) error {
	return s.NotificationRepo.MarkRead(id, userID)
}

func (s *NotificationService) SendMessage(senderID, recipientID uint, body string) (*model.Message, error) {
	m := &model.Message{SenderID: senderID, RecipientID: recipientID, Body: body}
	if err := s.NotificationRepo.CreateMessage(m); err != nil {
		return nil, err
	}
	s.Notify(recipientID, "message", "New message", body)
	return m, nil
}

// Conversation returns the two-way message history and marks the peer's
// messages as read.
func (s *NotificationService) Conversation(userID, peerID uint) ([]model.Message, error) {
	messages, err := s.NotificationRepo.ListMessages(userID, peerID)
	if err != nil {
		return nil, err
	}
	if err := s.NotificationRepo.MarkMessagesRead(userID, peerID); err != nil {
		logger.Log.Warn("failed to mark messages read", zap.Uint("userId", userID), zap.Error(err))
	}
	return messages, nil
}
