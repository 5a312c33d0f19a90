package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"animehub/internal/dto"
	"animehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubPublisher struct {
	published []*models.Message
	err       error
}

func (p *stubPublisher) PublishMessage(ctx context.Context, message *models.Message) error {
	p.published = append(p.published, message)
	return p.err
}

func TestConversations_DerivedFromFlatHistory(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	svc := NewMessageService(messageRepo, userRepo, nil)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alice := models.User{ID: "alice"}
	bob := models.User{ID: "bob"}
	carol := models.User{ID: "carol"}
	messageRepo.On("RowsForViewer", mock.Anything, "alice").Return([]models.Message{
		{ID: 3, SenderID: "bob", ReceiverID: "alice", Content: "newest", CreatedAt: base.Add(2 * time.Hour), Sender: bob, Receiver: alice},
		{ID: 2, SenderID: "alice", ReceiverID: "carol", Content: "to carol", CreatedAt: base.Add(time.Hour), Sender: alice, Receiver: carol},
		{ID: 1, SenderID: "bob", ReceiverID: "alice", Content: "oldest", CreatedAt: base, Sender: bob, Receiver: alice},
	}, nil)

	conversations, err := svc.Conversations(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, conversations, 2)
	assert.Equal(t, "bob", conversations[0].OtherUser.ID)
	assert.Equal(t, "newest", conversations[0].LastMessage.Content)
	assert.Equal(t, int64(2), conversations[0].UnreadCount)
	assert.Equal(t, "carol", conversations[1].OtherUser.ID)
	assert.Equal(t, int64(0), conversations[1].UnreadCount)
}

func TestWindow_ReversedToChronologicalOrder(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	svc := NewMessageService(messageRepo, userRepo, nil)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// The repository serves the page newest first.
	messageRepo.On("Window", mock.Anything, "alice", "bob", 50, 0).Return([]models.Message{
		{ID: 2, SenderID: "bob", ReceiverID: "alice", Content: "second", CreatedAt: base.Add(time.Minute)},
		{ID: 1, SenderID: "alice", ReceiverID: "bob", Content: "first", CreatedAt: base},
	}, nil)

	msgs, err := svc.Window(context.Background(), "alice", "bob", 0, 0)

	assert.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
}

func TestWindow_NegativePageRejected(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	svc := NewMessageService(messageRepo, new(MockUserRepository), nil)

	_, err := svc.Window(context.Background(), "alice", "bob", -1, 0)

	assert.ErrorIs(t, err, ErrInvalidPage)
	messageRepo.AssertNotCalled(t, "Window")
}

func TestSend_UnknownReceiverRejected(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	svc := NewMessageService(messageRepo, userRepo, nil)

	userRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.Send(context.Background(), "alice", &dto.SendMessageDTO{
		ReceiverID: "ghost",
		Content:    "hello?",
	})

	assert.ErrorIs(t, err, ErrReceiverNotFound)
	messageRepo.AssertNotCalled(t, "Send")
}

func TestSend_PublishesAfterStoring(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	publisher := &stubPublisher{}
	svc := NewMessageService(messageRepo, userRepo, publisher)

	userRepo.On("GetByID", mock.Anything, "bob").Return(&models.User{ID: "bob"}, nil)
	messageRepo.On("Send", mock.Anything, mock.AnythingOfType("*models.Message")).Return(nil)

	message, err := svc.Send(context.Background(), "alice", &dto.SendMessageDTO{
		ReceiverID: "bob",
		Content:    "hi",
	})

	assert.NoError(t, err)
	assert.Len(t, publisher.published, 1)
	assert.Equal(t, message, publisher.published[0])
}

func TestSend_PublishFailureDoesNotFailSend(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	publisher := &stubPublisher{err: errors.New("hub down")}
	svc := NewMessageService(messageRepo, userRepo, publisher)

	userRepo.On("GetByID", mock.Anything, "bob").Return(&models.User{ID: "bob"}, nil)
	messageRepo.On("Send", mock.Anything, mock.AnythingOfType("*models.Message")).Return(nil)

	message, err := svc.Send(context.Background(), "alice", &dto.SendMessageDTO{
		ReceiverID: "bob",
		Content:    "hi",
	})

	assert.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMarkRead_FlagsSenderToViewerDirection(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	svc := NewMessageService(messageRepo, new(MockUserRepository), nil)

	messageRepo.On("MarkRead", mock.Anything, "bob", "alice").Return(nil)

	err := svc.MarkRead(context.Background(), "alice", "bob")

	assert.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestUnreadCount_Passthrough(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	svc := NewMessageService(messageRepo, new(MockUserRepository), nil)

	messageRepo.On("UnreadTotal", mock.Anything, "alice").Return(int64(7), nil)

	count, err := svc.UnreadCount(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
