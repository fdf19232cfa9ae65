package repository

import (
	"nura_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) ListByUser(userID uint, unreadOnly bool) ([]model.Notification, error) {
	var ns []model.Notification
	query := r.DB.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	err := query.Order("created_at desc").Limit(100).Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) CreateMessage(m *model.Message) error {
	return r.DB.Create(m).Error
}

func (r *NotificationRepository) ListMessages(userID, peerID uint) ([]model.Message, error) {
	var ms []model.Message
	err := r.DB.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, peerID, peerID, userID,
	).Order("created_at asc").Find(&ms).Error
	return ms, err
}

func (r *NotificationRepository) MarkMessagesRead(recipientID, senderID uint) error {
	return r.DB.Model(&model.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND is_read = ?", recipientID, senderID, false).
		Update("is_read", true).Error
}
