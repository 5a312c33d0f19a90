package handler

import (
	"errors"
	"net/http"
	"strconv"

	"animehub/internal/dto"
	"animehub/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterRoutes registers the direct message routes. Everything here
// requires a signed-in viewer.
func (h *MessageHandler) RegisterRoutes(authed *gin.RouterGroup) {
	messages := authed.Group("/messages")
	{
		messages.GET("/conversations", h.ListConversations)
		messages.GET("/unread-count", h.UnreadCount)
		messages.GET("/:user_id", h.Window)
		messages.POST("", h.Send)
		messages.POST("/:user_id/read", h.MarkRead)
	}
}

// ListConversations returns the viewer's inbox: one entry per other
// party with the latest message and unread count, most recent first.
// GET /api/messages/conversations
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID := c.GetString("userID")

	conversations, err := h.messageService.Conversations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// Window pages the conversation with one user, oldest first within the
// page; offset 0 addresses the newest messages.
// GET /api/messages/:user_id?limit=50&offset=0
func (h *MessageHandler) Window(c *gin.Context) {
	userID := c.GetString("userID")
	otherID := c.Param("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	msgs, err := h.messageService.Window(c.Request.Context(), userID, otherID, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Send stores a direct message and pushes it to the receiver's live
// connections when any exist.
// POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.SendMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrReceiverNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// MarkRead flags everything the given user sent to the viewer as read.
// POST /api/messages/:user_id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("userID")
	senderID := c.Param("user_id")

	if err := h.messageService.MarkRead(c.Request.Context(), userID, senderID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark messages read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "messages marked read"})
}

// UnreadCount returns the viewer's total unread messages across all
// conversations.
// GET /api/messages/unread-count
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID := c.GetString("userID")

	count, err := h.messageService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count unread messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
