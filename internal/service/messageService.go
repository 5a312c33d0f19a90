package service

import (
	"context"
	"errors"
	"log/slog"

	"animehub/internal/aggregate"
	"animehub/internal/dto"
	"animehub/internal/models"
	"animehub/internal/repository"
)

const defaultWindowSize = 50

var ErrReceiverNotFound = errors.New("receiver not found")

// MessagePublisher pushes a freshly stored message to any live connection
// of its receiver. Delivery is best effort; the message is already durable
// by the time this is called.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, message *models.Message) error
}

type MessageService interface {
	Conversations(ctx context.Context, viewerID string) ([]models.Conversation, error)
	Window(ctx context.Context, viewerID, otherID string, limit, offset int) ([]models.MessageWithUsers, error)
	Send(ctx context.Context, senderID string, d *dto.SendMessageDTO) (*models.Message, error)
	MarkRead(ctx context.Context, viewerID, senderID string) error
	UnreadCount(ctx context.Context, viewerID string) (int64, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	publisher   MessagePublisher
}

// NewMessageService wires the direct message facade. publisher may be nil
// when no realtime hub is running.
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	publisher MessagePublisher,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// Conversations derives the viewer's inbox from their flat message history:
// one entry per other party, carrying the latest message and the unread
// count, ordered by most recent activity.
func (s *messageService) Conversations(ctx context.Context, viewerID string) ([]models.Conversation, error) {
	msgs, err := s.messageRepo.RowsForViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return aggregate.DeriveConversations(viewerID, msgs), nil
}

// Window returns one page of the conversation between viewer and other,
// oldest first within the page. The page itself addresses the newest
// messages, so offset 0 is the tail of the conversation.
func (s *messageService) Window(ctx context.Context, viewerID, otherID string, limit, offset int) ([]models.MessageWithUsers, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidPage
	}
	if limit == 0 {
		limit = defaultWindowSize
	}

	msgs, err := s.messageRepo.Window(ctx, viewerID, otherID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]models.MessageWithUsers, len(msgs))
	for i, m := range msgs {
		sender := m.Sender
		receiver := m.Receiver
		m.Sender = models.User{}
		m.Receiver = models.User{}
		// Reverse the DESC page into chronological order.
		result[len(msgs)-1-i] = models.MessageWithUsers{
			Message:  m,
			Sender:   sender,
			Receiver: receiver,
		}
	}
	return result, nil
}

func (s *messageService) Send(ctx context.Context, senderID string, d *dto.SendMessageDTO) (*models.Message, error) {
	receiver, err := s.userRepo.GetByID(ctx, d.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: d.ReceiverID,
		Content:    d.Content,
	}
	if err := s.messageRepo.Send(ctx, message); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMessage(ctx, message); err != nil {
			slog.Warn("realtime publish failed", "message_id", message.ID, "error", err)
		}
	}
	return message, nil
}

// MarkRead flags everything the given sender sent to the viewer as read.
func (s *messageService) MarkRead(ctx context.Context, viewerID, senderID string) error {
	return s.messageRepo.MarkRead(ctx, senderID, viewerID)
}

func (s *messageService) UnreadCount(ctx context.Context, viewerID string) (int64, error) {
	return s.messageRepo.UnreadTotal(ctx, viewerID)
}
