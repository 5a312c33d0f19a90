package repository

import (
	"context"
	"fmt"

	"animehub/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	RowsForViewer(ctx context.Context, viewerID string) ([]models.Message, error)
	Window(ctx context.Context, viewerID, otherID string, limit, offset int) ([]models.Message, error)
	Send(ctx context.Context, message *models.Message) error
	MarkRead(ctx context.Context, senderID, receiverID string) error
	UnreadTotal(ctx context.Context, viewerID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// RowsForViewer fetches every message touching the viewer, newest first,
// with both sides' users loaded. Conversation grouping happens in the
// aggregate fold, not here.
func (r *messageRepository) RowsForViewer(ctx context.Context, viewerID string) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", viewerID, viewerID).
		Preload("Sender").
		Preload("Receiver").
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("messages for viewer: %w", err)
	}
	return msgs, nil
}

// Window pages the messages between two users. The window addresses the
// newest messages (DESC with limit/offset); the service reverses the page
// so callers receive it chronologically.
func (r *messageRepository) Window(ctx context.Context, viewerID, otherID string, limit, offset int) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			viewerID, otherID, otherID, viewerID).
		Preload("Sender").
		Preload("Receiver").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("conversation window: %w", err)
	}
	return msgs, nil
}

func (r *messageRepository) Send(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// MarkRead flags every unread message from sender to receiver as read.
func (r *messageRepository) MarkRead(ctx context.Context, senderID, receiverID string) error {
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", senderID, receiverID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}

func (r *messageRepository) UnreadTotal(ctx context.Context, viewerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", viewerID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}
